package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Title string `json:"title" binding:"required,min=5"`
	Level string `json:"level" binding:"omitempty,oneof=easy hard"`
	Count int    `json:"count" binding:"max=3"`
}

func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		want uint
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"-3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseID(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestValidationErrors_UsesJSONNames(t *testing.T) {
	UseJSONFieldNames()

	err := binding.Validator.ValidateStruct(&sampleInput{Title: "Hi", Level: "medium", Count: 9})
	require.Error(t, err)

	fields := map[string]FieldError{}
	for _, fe := range ValidationErrors(err) {
		fields[fe.Field] = fe
	}

	require.Contains(t, fields, "title")
	assert.Equal(t, "min", fields["title"].Tag)
	assert.Equal(t, "title must be at least 5 characters", fields["title"].Message)
	assert.Equal(t, "oneof", fields["level"].Tag)
	assert.Equal(t, "count must be at most 3", fields["count"].Message)
}

func TestValidationErrors_TypeAndSyntax(t *testing.T) {
	var v sampleInput
	err := json.Unmarshal([]byte(`{"title": 5}`), &v)
	got := ValidationErrors(err)
	require.Len(t, got, 1)
	assert.Equal(t, "title", got[0].Field)
	assert.Equal(t, "type", got[0].Tag)

	err = json.Unmarshal([]byte(`{"title":`), &v)
	got = ValidationErrors(err)
	require.Len(t, got, 1)
	assert.Equal(t, "json", got[0].Tag)
}

func TestParamIDAndErrorBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stories/:id", func(c *gin.Context) {
		id, ok := ParamID(c, "id", "story")
		if !ok {
			return
		}
		if id == 7 {
			InternalError(c, errors.New("boom"), "Failed to retrieve story")
			return
		}
		NotFound(c, "Story not found")
	})

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/stories/x", http.StatusBadRequest, "Invalid story ID"},
		{"/stories/1", http.StatusNotFound, "Story not found"},
		{"/stories/7", http.StatusInternalServerError, "Failed to retrieve story"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

		assert.Equal(t, tc.status, w.Code, tc.path)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.message, body.Message)
		assert.Empty(t, body.Errors)
	}
}
