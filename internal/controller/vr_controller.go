package controller

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mythos_backend/internal/model"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type VRController struct {
	VRService *service.VRService
}

func NewVRController(vrService *service.VRService) *VRController {
	return &VRController{VRService: vrService}
}

// @Summary 获取实体的VR模型
// @Tags VR场景
// @Produce json
// @Param entityType query string true "实体类型，例如 deity"
// @Param entityId query int false "实体ID"
// @Success 200 {array} model.VRModel
// @Failure 400 {object} util.Response
// @Router /api/vr/models [get]
func (c *VRController) GetModels(ctx *gin.Context) {
	entityType := ctx.Query("entityType")
	if entityType == "" {
		util.BadRequest(ctx, "Entity type is required")
		return
	}

	var entityID uint
	if raw := ctx.Query("entityId"); raw != "" {
		id, ok := util.ParseID(raw)
		if !ok {
			util.BadRequest(ctx, "Invalid entity ID")
			return
		}
		entityID = id
	}
	util.Success(ctx, c.VRService.Store.VRModels(entityType, entityID))
}

func (c *VRController) GetModel(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "model")
	if !ok {
		return
	}

	m, found := c.VRService.Store.VRModelByID(id)
	if !found {
		util.NotFound(ctx, "VR model not found")
		return
	}
	util.Success(ctx, m)
}

func (c *VRController) CreateModel(ctx *gin.Context) {
	var req model.VRModelInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid VR model data", err)
		return
	}
	util.Created(ctx, c.VRService.Store.CreateVRModel(req))
}

func (c *VRController) GetScenes(ctx *gin.Context) {
	util.Success(ctx, c.VRService.Store.AllVRScenes())
}

func (c *VRController) GetFeaturedScenes(ctx *gin.Context) {
	util.Success(ctx, c.VRService.Store.FeaturedVRScenes())
}

// @Summary 获取VR场景详情
// @Description 场景有关联模型时一并返回
// @Tags VR场景
// @Produce json
// @Param id path int true "场景ID"
// @Success 200 {object} service.SceneWithModel
// @Failure 404 {object} util.Response
// @Router /api/vr/scenes/{id} [get]
func (c *VRController) GetScene(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "scene")
	if !ok {
		return
	}

	scene, found := c.VRService.Scene(id)
	if !found {
		util.NotFound(ctx, "VR scene not found")
		return
	}
	util.Success(ctx, scene)
}

func (c *VRController) GetScenesByDeity(ctx *gin.Context) {
	util.Success(ctx, c.VRService.Store.VRScenesByDeity(ctx.Param("deity")))
}

func (c *VRController) GetScenesByCategory(ctx *gin.Context) {
	util.Success(ctx, c.VRService.Store.VRScenesByCategory(ctx.Param("category")))
}

func (c *VRController) SearchScenes(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		util.BadRequest(ctx, "Search query is required")
		return
	}
	util.Success(ctx, c.VRService.SearchScenes(q))
}

func (c *VRController) CreateScene(ctx *gin.Context) {
	var req model.VRSceneInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid VR scene data", err)
		return
	}
	util.Created(ctx, c.VRService.Store.CreateVRScene(req))
}
