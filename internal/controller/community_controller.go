package controller

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/model"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// @Summary 获取讨论区
// @Tags 社区
// @Produce json
// @Success 200 {array} model.DiscussionForum
// @Router /api/forums [get]
func (c *CommunityController) GetForums(ctx *gin.Context) {
	util.Success(ctx, c.CommunityService.Store.AllForums())
}

func (c *CommunityController) GetForum(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "forum")
	if !ok {
		return
	}

	forum, found := c.CommunityService.Store.ForumByID(id)
	if !found {
		util.NotFound(ctx, "Forum not found")
		return
	}
	util.Success(ctx, forum)
}

func (c *CommunityController) GetForumsByCategory(ctx *gin.Context) {
	util.Success(ctx, c.CommunityService.Store.ForumsByCategory(ctx.Param("category")))
}

// @Summary 创建讨论区
// @Tags 社区
// @Accept json
// @Produce json
// @Param forum body model.DiscussionForumInput true "讨论区"
// @Success 201 {object} model.DiscussionForum
// @Failure 400 {object} util.Response
// @Router /api/forums [post]
func (c *CommunityController) CreateForum(ctx *gin.Context) {
	var req model.DiscussionForumInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid forum data", err)
		return
	}
	util.Created(ctx, c.CommunityService.CreateForum(req))
}

func (c *CommunityController) GetForumThreads(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "forum")
	if !ok {
		return
	}
	util.Success(ctx, c.CommunityService.Store.ThreadsByForumID(id))
}

func (c *CommunityController) GetUserThreads(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.CommunityService.Store.ThreadsByUser(userID))
}

// @Summary 获取帖子详情
// @Description 每次读取都会增加浏览次数
// @Tags 社区
// @Produce json
// @Param id path int true "帖子ID"
// @Success 200 {object} model.DiscussionThread
// @Failure 404 {object} util.Response
// @Router /api/threads/{id} [get]
func (c *CommunityController) GetThread(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "thread")
	if !ok {
		return
	}

	thread, found, err := c.CommunityService.ViewThread(id)
	if err != nil {
		util.InternalError(ctx, err, "Failed to fetch thread")
		return
	}
	if !found {
		util.NotFound(ctx, "Thread not found")
		return
	}
	util.Success(ctx, thread)
}

// @Summary 创建帖子
// @Tags 社区
// @Accept json
// @Produce json
// @Param thread body model.DiscussionThreadInput true "帖子内容"
// @Success 201 {object} model.DiscussionThread
// @Failure 400 {object} util.Response
// @Router /api/threads [post]
func (c *CommunityController) CreateThread(ctx *gin.Context) {
	var req model.DiscussionThreadInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid thread data", err)
		return
	}
	util.Created(ctx, c.CommunityService.CreateThread(ctx.Request.Context(), req))
}

func (c *CommunityController) GetThreadComments(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "thread")
	if !ok {
		return
	}
	util.Success(ctx, c.CommunityService.Store.CommentsByThreadID(id))
}

func (c *CommunityController) GetCommentReplies(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "comment")
	if !ok {
		return
	}
	util.Success(ctx, c.CommunityService.Store.CommentReplies(id))
}

func (c *CommunityController) GetUserComments(ctx *gin.Context) {
	userID, ok := util.ParamID(ctx, "userId", "user")
	if !ok {
		return
	}
	util.Success(ctx, c.CommunityService.Store.CommentsByUser(userID))
}

// @Summary 发表评论
// @Description 同时刷新所属帖子的最后活跃时间
// @Tags 社区
// @Accept json
// @Produce json
// @Param comment body model.DiscussionCommentInput true "评论内容"
// @Success 201 {object} model.DiscussionComment
// @Failure 400 {object} util.Response
// @Router /api/comments [post]
func (c *CommunityController) CreateComment(ctx *gin.Context) {
	var req model.DiscussionCommentInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid comment data", err)
		return
	}
	util.Created(ctx, c.CommunityService.CreateComment(ctx.Request.Context(), req))
}
