package controller

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/model"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func (c *ProgressController) GetProgressOverview(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.ProgressService.Store.UserProgressOverview(userID))
}

func (c *ProgressController) GetStoryProgress(ctx *gin.Context) {
	userID, storyID, ok := userStoryIDs(ctx)
	if !ok {
		return
	}

	progress, found := c.ProgressService.Store.UserProgressByStory(userID, storyID)
	if !found {
		util.NotFound(ctx, "Progress not found")
		return
	}
	util.Success(ctx, progress)
}

// @Summary 开始阅读
// @Description 为用户和故事创建进度记录，已存在时替换
// @Tags 阅读进度
// @Accept json
// @Produce json
// @Param progress body model.UserProgressInput true "进度"
// @Success 201 {object} model.UserProgress
// @Failure 400 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) CreateProgress(ctx *gin.Context) {
	var req model.UserProgressInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid progress data", err)
		return
	}
	util.Created(ctx, c.ProgressService.StartProgress(ctx.Request.Context(), req))
}

// @Summary 更新阅读进度
// @Tags 阅读进度
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param storyId path int true "故事ID"
// @Param patch body model.UserProgressPatch true "要修改的字段"
// @Success 200 {object} model.UserProgress
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{userId}/progress/{storyId} [patch]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	userID, storyID, ok := userStoryIDs(ctx)
	if !ok {
		return
	}

	var req model.UserProgressPatch
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid progress data", err)
		return
	}

	progress, found := c.ProgressService.UpdateProgress(ctx.Request.Context(), userID, storyID, req)
	if !found {
		util.NotFound(ctx, "Progress not found")
		return
	}
	util.Success(ctx, progress)
}

func userStoryIDs(ctx *gin.Context) (userID, storyID uint, ok bool) {
	userID, okUser := util.ParseID(ctx.Param("userId"))
	storyID, okStory := util.ParseID(ctx.Param("storyId"))
	if !okUser || !okStory {
		util.BadRequest(ctx, "Invalid user ID or story ID")
		return 0, 0, false
	}
	return userID, storyID, true
}

func (c *ProgressController) GetAchievements(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.Store.AllAchievements())
}

func (c *ProgressController) GetAchievement(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "achievement")
	if !ok {
		return
	}

	achievement, found := c.ProgressService.Store.AchievementByID(id)
	if !found {
		util.NotFound(ctx, "Achievement not found")
		return
	}
	util.Success(ctx, achievement)
}

func (c *ProgressController) GetAchievementsByCategory(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.Store.AchievementsByCategory(ctx.Param("category")))
}

// @Summary 获取用户成就
// @Description 根据积分计算每个成就的解锁状态和进度百分比
// @Tags 阅读进度
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {array} model.AchievementStatus
// @Router /api/users/{userId}/achievements [get]
func (c *ProgressController) GetUserAchievements(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.ProgressService.UserAchievements(userID))
}

func (c *ProgressController) GetUserPoints(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.ProgressService.TotalPoints(userID))
}

func (c *ProgressController) GetUserPointsByCategory(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.ProgressService.CategoryPoints(userID, ctx.Param("category")))
}

// @Summary 记录积分
// @Tags 阅读进度
// @Accept json
// @Produce json
// @Param points body model.UserPointsInput true "积分"
// @Success 201 {object} model.UserPoints
// @Failure 400 {object} util.Response
// @Router /api/points [post]
func (c *ProgressController) AwardPoints(ctx *gin.Context) {
	var req model.UserPointsInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid points data", err)
		return
	}
	util.Created(ctx, c.ProgressService.AwardPoints(ctx.Request.Context(), req))
}
