package controller

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/model"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type LoreController struct {
	LoreService *service.LoreService
}

func NewLoreController(loreService *service.LoreService) *LoreController {
	return &LoreController{LoreService: loreService}
}

func (c *LoreController) GetGlossary(ctx *gin.Context) {
	util.Success(ctx, c.LoreService.Store.AllGlossaryTerms())
}

func (c *LoreController) GetGlossaryByCategory(ctx *gin.Context) {
	util.Success(ctx, c.LoreService.Store.GlossaryTermsByCategory(ctx.Param("category")))
}

// @Summary 查询术语
// @Tags 神话百科
// @Produce json
// @Param term path string true "术语，不区分大小写"
// @Success 200 {object} model.GlossaryTerm
// @Failure 404 {object} util.Response
// @Router /api/glossary/{term} [get]
func (c *LoreController) GetGlossaryTerm(ctx *gin.Context) {
	term, found := c.LoreService.Store.GlossaryTermByTerm(ctx.Param("term"))
	if !found {
		util.NotFound(ctx, "Term not found")
		return
	}
	util.Success(ctx, term)
}

func (c *LoreController) CreateGlossaryTerm(ctx *gin.Context) {
	var req model.GlossaryTermInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid glossary term data", err)
		return
	}
	util.Created(ctx, c.LoreService.Store.CreateGlossaryTerm(req))
}

// @Summary 获取人物关系
// @Description 人物出现在关系任意一方都会返回
// @Tags 神话百科
// @Produce json
// @Param id path int true "人物ID"
// @Success 200 {array} model.CharacterRelationship
// @Router /api/characters/{id}/relationships [get]
func (c *LoreController) GetCharacterRelationships(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "character")
	if !ok {
		return
	}
	util.Success(ctx, c.LoreService.Store.CharacterRelationships(id))
}

func (c *LoreController) CreateCharacterRelationship(ctx *gin.Context) {
	var req model.CharacterRelationshipInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid relationship data", err)
		return
	}
	util.Created(ctx, c.LoreService.Store.CreateCharacterRelationship(req))
}

func (c *LoreController) GetStoryElements(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "story")
	if !ok {
		return
	}
	util.Success(ctx, c.LoreService.Store.StoryElements(id))
}

func (c *LoreController) CreateStoryElement(ctx *gin.Context) {
	var req model.StoryElementInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid story element data", err)
		return
	}
	util.Created(ctx, c.LoreService.Store.CreateStoryElement(req))
}

// @Summary 获取音频资源
// @Tags 神话百科
// @Produce json
// @Param type query string false "资源类型"
// @Param mood query string false "情绪"
// @Success 200 {array} model.AudioAsset
// @Failure 400 {object} util.Response
// @Router /api/audio [get]
func (c *LoreController) GetAudioAssets(ctx *gin.Context) {
	assetType, mood := ctx.Query("type"), ctx.Query("mood")
	if assetType == "" && mood == "" {
		util.BadRequest(ctx, "Type or mood parameter is required")
		return
	}
	util.Success(ctx, c.LoreService.AudioAssets(assetType, mood))
}

func (c *LoreController) CreateAudioAsset(ctx *gin.Context) {
	var req model.AudioAssetInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid audio asset data", err)
		return
	}
	util.Created(ctx, c.LoreService.Store.CreateAudioAsset(req))
}
