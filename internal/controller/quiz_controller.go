package controller

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.Store.AllQuizzes())
}

// @Summary 获取测验详情
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "quiz")
	if !ok {
		return
	}

	quiz, found := c.QuizService.Store.QuizByID(id)
	if !found {
		util.NotFound(ctx, "Quiz not found")
		return
	}
	util.Success(ctx, quiz)
}

func (c *QuizController) GetQuizzesByCategory(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.Store.QuizzesByCategory(ctx.Param("category")))
}

func (c *QuizController) GetQuizzesByDifficulty(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.Store.QuizzesByDifficulty(ctx.Param("difficulty")))
}

// @Summary 获取测验题目
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {array} model.QuizQuestion
// @Failure 400 {object} util.Response
// @Router /api/quizzes/{id}/questions [get]
func (c *QuizController) GetQuizQuestions(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "quiz")
	if !ok {
		return
	}
	util.Success(ctx, c.QuizService.Store.QuestionsByQuizID(id))
}

func (c *QuizController) GetQuestion(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "question")
	if !ok {
		return
	}

	question, found := c.QuizService.Store.QuestionByID(id)
	if !found {
		util.NotFound(ctx, "Question not found")
		return
	}
	util.Success(ctx, question)
}

// @Summary 提交测验答案
// @Description 批改答案；传入 userId 时每答对一题记 10 积分
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path int true "测验ID"
// @Param submission body service.QuizSubmission true "以题目ID为键的答案"
// @Success 200 {object} service.QuizResult
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id", "quiz")
	if !ok {
		return
	}

	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "Invalid quiz submission", err)
		return
	}

	result, found := c.QuizService.Submit(ctx.Request.Context(), id, req)
	if !found {
		util.NotFound(ctx, "Quiz not found")
		return
	}
	util.Success(ctx, result)
}
