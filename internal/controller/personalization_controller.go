package controller

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/model"
	"mythos_backend/internal/repository"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type PersonalizationController struct {
	PersonalizationService *service.PersonalizationService
}

func NewPersonalizationController(personalizationService *service.PersonalizationService) *PersonalizationController {
	return &PersonalizationController{PersonalizationService: personalizationService}
}

// @Summary 获取用户资料
// @Tags 用户
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} service.UserProfile
// @Failure 404 {object} util.Response
// @Router /api/users/{userId} [get]
func (c *PersonalizationController) GetProfile(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}

	profile, found := c.PersonalizationService.Profile(userID)
	if !found {
		util.NotFound(ctx, "User not found")
		return
	}
	util.Success(ctx, profile)
}

func (c *PersonalizationController) GetPreferences(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}

	prefs, found := c.PersonalizationService.Store.UserPreferences(userID)
	if !found {
		util.NotFound(ctx, "User preferences not found")
		return
	}
	util.Success(ctx, prefs)
}

// @Summary 保存偏好设置
// @Description 用户没有偏好记录时创建，否则更新已有记录
// @Tags 用户
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param preferences body model.UserPreferenceInput true "偏好设置"
// @Success 201 {object} model.UserPreference
// @Failure 400 {object} util.Response
// @Router /api/users/{userId}/preferences [post]
func (c *PersonalizationController) SavePreferences(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}

	var req model.UserPreferenceInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid preferences data", err)
		return
	}
	util.Created(ctx, c.PersonalizationService.SavePreferences(userID, req))
}

func (c *PersonalizationController) GetUserInteractions(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.PersonalizationService.Store.StoryInteractionsByUser(userID))
}

func (c *PersonalizationController) GetStoryInteractions(ctx *gin.Context) {
	storyID, ok := util.ParamID(ctx, "id", "story")
	if !ok {
		return
	}
	util.Success(ctx, c.PersonalizationService.Store.StoryInteractionsByStory(storyID))
}

// @Summary 记录故事互动
// @Tags 用户
// @Accept json
// @Produce json
// @Param interaction body model.StoryInteractionInput true "互动"
// @Success 201 {object} model.StoryInteraction
// @Failure 400 {object} util.Response
// @Router /api/interactions [post]
func (c *PersonalizationController) CreateInteraction(ctx *gin.Context) {
	var req model.StoryInteractionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid interaction data", err)
		return
	}
	util.Created(ctx, c.PersonalizationService.RecordInteraction(ctx.Request.Context(), req))
}

// @Summary 推荐故事
// @Description 返回用户未互动过的故事，偏好分类优先；limit 为 0 时返回空列表
// @Tags 用户
// @Produce json
// @Param userId path int true "用户ID"
// @Param limit query int false "返回数量上限" default(5)
// @Success 200 {array} model.Story
// @Router /api/users/{userId}/recommendations [get]
func (c *PersonalizationController) GetRecommendations(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	limit := util.QueryInt(ctx, "limit", repository.DefaultRecommendationLimit)
	util.Success(ctx, c.PersonalizationService.Recommendations(userID, limit))
}

func (c *PersonalizationController) GetBookmarks(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.PersonalizationService.Store.UserBookmarks(userID))
}

func (c *PersonalizationController) CreateBookmark(ctx *gin.Context) {
	var req model.BookmarkInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid bookmark data", err)
		return
	}
	util.Created(ctx, c.PersonalizationService.Store.CreateBookmark(req))
}

// @Summary 删除书签
// @Tags 用户
// @Param id path int true "书签ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/bookmarks/{id} [delete]
func (c *PersonalizationController) DeleteBookmark(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "bookmark")
	if !ok {
		return
	}

	if !c.PersonalizationService.Store.DeleteBookmark(id) {
		util.NotFound(ctx, "Bookmark not found")
		return
	}
	util.NoContent(ctx)
}
