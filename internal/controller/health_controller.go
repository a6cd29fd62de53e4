package controller

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/repository"
	"mythos_backend/internal/util"
)

type HealthController struct {
	Store *repository.ContentStore
}

func NewHealthController(store *repository.ContentStore) *HealthController {
	return &HealthController{Store: store}
}

// @Summary 健康检查
// @Description 检查服务状态并返回各集合的记录数
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":      "ok",
		"collections": c.Store.Stats(),
	})
}
