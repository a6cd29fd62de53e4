package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID parses a base-10 id. Anything that is not a non-negative integer is rejected.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ParamID parses the named path parameter and replies 400 "Invalid <label> ID" when it
// is not an id. The caller returns when ok is false.
func ParamID(c *gin.Context, name, label string) (id uint, ok bool) {
	id, ok = ParseID(c.Param(name))
	if !ok {
		BadRequest(c, "Invalid "+label+" ID")
	}
	return id, ok
}

// QueryInt reads an integer query parameter, falling back to def when it is
// missing or malformed.
func QueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
