package controller

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mythos_backend/internal/model"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary 获取故事列表
// @Tags 故事
// @Produce json
// @Success 200 {array} model.Story
// @Router /api/stories [get]
func (c *ContentController) GetStories(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Store.AllStories())
}

// @Summary 获取精选故事
// @Tags 故事
// @Produce json
// @Success 200 {array} model.Story
// @Router /api/stories/featured [get]
func (c *ContentController) GetFeaturedStories(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Store.FeaturedStories())
}

// @Summary 获取故事详情
// @Tags 故事
// @Produce json
// @Param id path int true "故事ID"
// @Success 200 {object} model.Story
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/stories/{id} [get]
func (c *ContentController) GetStory(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "story")
	if !ok {
		return
	}

	story, found := c.ContentService.Store.StoryByID(id)
	if !found {
		util.NotFound(ctx, "Story not found")
		return
	}
	util.Success(ctx, story)
}

// @Summary 按分类获取故事
// @Description 分类匹配不区分大小写
// @Tags 故事
// @Produce json
// @Param category path string true "分类"
// @Success 200 {array} model.Story
// @Router /api/stories/category/{category} [get]
func (c *ContentController) GetStoriesByCategory(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Store.StoriesByCategory(ctx.Param("category")))
}

// @Summary 搜索故事
// @Tags 故事
// @Produce json
// @Param q query string true "在标题、摘要和正文中查找的关键词，不能为空白"
// @Success 200 {array} model.Story
// @Failure 400 {object} util.Response
// @Router /api/search [get]
func (c *ContentController) SearchStories(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		util.BadRequest(ctx, "Search query is required")
		return
	}
	util.Success(ctx, c.ContentService.SearchStories(q))
}

func (c *ContentController) GetDeities(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Store.AllDeities())
}

func (c *ContentController) GetDeity(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "deity")
	if !ok {
		return
	}

	deity, found := c.ContentService.Store.DeityByID(id)
	if !found {
		util.NotFound(ctx, "Deity not found")
		return
	}
	util.Success(ctx, deity)
}

func (c *ContentController) GetEpics(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Store.AllEpics())
}

func (c *ContentController) GetEpic(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "epic")
	if !ok {
		return
	}

	epic, found := c.ContentService.Store.EpicByID(id)
	if !found {
		util.NotFound(ctx, "Epic not found")
		return
	}
	util.Success(ctx, epic)
}

// @Summary 获取相关故事
// @Description 每条关联附带目标故事，目标不存在时为 null
// @Tags 故事
// @Produce json
// @Param id path int true "故事ID"
// @Success 200 {array} model.RelatedStoryView
// @Failure 400 {object} util.Response
// @Router /api/stories/{id}/related [get]
func (c *ContentController) GetRelatedStories(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "story")
	if !ok {
		return
	}
	util.Success(ctx, c.ContentService.RelatedStories(id))
}

// @Summary 关联两个故事
// @Tags 故事
// @Accept json
// @Produce json
// @Param relation body model.RelatedStoryInput true "关联关系"
// @Success 201 {object} model.RelatedStory
// @Failure 400 {object} util.Response
// @Router /api/stories/related [post]
func (c *ContentController) CreateRelatedStory(ctx *gin.Context) {
	var req model.RelatedStoryInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid related story data", err)
		return
	}
	util.Created(ctx, c.ContentService.CreateRelatedStory(req))
}
