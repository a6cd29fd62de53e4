package app

import (
	"github.com/gin-gonic/gin"

	"mythos_backend/internal/util"
	"mythos_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.NoRoute(func(ctx *gin.Context) {
		util.NotFound(ctx, "Route not found")
	})

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	a.registerContentRoutes(api, c)
	a.registerQuizRoutes(api, c)
	a.registerUserRoutes(api, c)
	a.registerCommunityRoutes(api, c)
	a.registerProgressRoutes(api, c)
	a.registerLoreRoutes(api, c)
	a.registerVRRoutes(api, c)
}

func (a *App) registerContentRoutes(rg *gin.RouterGroup, c *controllers) {
	stories := rg.Group("/stories")
	{
		stories.GET("", c.content.GetStories)
		stories.GET("/featured", c.content.GetFeaturedStories)
		stories.GET("/category/:category", c.content.GetStoriesByCategory)
		stories.GET("/:id", c.content.GetStory)
		stories.GET("/:id/related", c.content.GetRelatedStories)
		stories.GET("/:id/interactions", c.personalization.GetStoryInteractions)
		stories.GET("/:id/elements", c.lore.GetStoryElements)
		stories.POST("/related", c.content.CreateRelatedStory)
	}

	rg.GET("/search", c.content.SearchStories)
	rg.GET("/deities", c.content.GetDeities)
	rg.GET("/deities/:id", c.content.GetDeity)
	rg.GET("/epics", c.content.GetEpics)
	rg.GET("/epics/:id", c.content.GetEpic)
}

func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	quizzes := rg.Group("/quizzes")
	{
		quizzes.GET("", c.quiz.GetQuizzes)
		quizzes.GET("/category/:category", c.quiz.GetQuizzesByCategory)
		quizzes.GET("/difficulty/:difficulty", c.quiz.GetQuizzesByDifficulty)
		quizzes.GET("/:id", c.quiz.GetQuiz)
		quizzes.GET("/:id/questions", c.quiz.GetQuizQuestions)
		quizzes.POST("/:id/submit", c.quiz.SubmitQuiz)
	}
	rg.GET("/questions/:id", c.quiz.GetQuestion)
}

// 用户维度的读取接口统一挂在 /users/:userId 下
func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	users := rg.Group("/users/:userId")
	{
		users.GET("", c.personalization.GetProfile)
		users.GET("/preferences", c.personalization.GetPreferences)
		users.POST("/preferences", c.personalization.SavePreferences)
		users.GET("/interactions", c.personalization.GetUserInteractions)
		users.GET("/recommendations", c.personalization.GetRecommendations)
		users.GET("/bookmarks", c.personalization.GetBookmarks)
		users.GET("/threads", c.community.GetUserThreads)
		users.GET("/comments", c.community.GetUserComments)
		users.GET("/progress", c.progress.GetProgressOverview)
		users.GET("/progress/:storyId", c.progress.GetStoryProgress)
		users.PATCH("/progress/:storyId", c.progress.UpdateProgress)
		users.GET("/achievements", c.progress.GetUserAchievements)
		users.GET("/points", c.progress.GetUserPoints)
		users.GET("/points/:category", c.progress.GetUserPointsByCategory)
	}

	rg.POST("/interactions", c.personalization.CreateInteraction)
	rg.POST("/bookmarks", c.personalization.CreateBookmark)
	rg.DELETE("/bookmarks/:id", c.personalization.DeleteBookmark)
}

func (a *App) registerCommunityRoutes(rg *gin.RouterGroup, c *controllers) {
	forums := rg.Group("/forums")
	{
		forums.GET("", c.community.GetForums)
		forums.POST("", c.community.CreateForum)
		forums.GET("/category/:category", c.community.GetForumsByCategory)
		forums.GET("/:id", c.community.GetForum)
		forums.GET("/:id/threads", c.community.GetForumThreads)
	}

	threads := rg.Group("/threads")
	{
		threads.POST("", c.community.CreateThread)
		threads.GET("/:id", c.community.GetThread)
		threads.GET("/:id/comments", c.community.GetThreadComments)
	}

	rg.POST("/comments", c.community.CreateComment)
	rg.GET("/comments/:id/replies", c.community.GetCommentReplies)
}

func (a *App) registerProgressRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/progress", c.progress.CreateProgress)
	rg.POST("/points", c.progress.AwardPoints)

	achievements := rg.Group("/achievements")
	{
		achievements.GET("", c.progress.GetAchievements)
		achievements.GET("/category/:category", c.progress.GetAchievementsByCategory)
		achievements.GET("/:id", c.progress.GetAchievement)
	}
}

func (a *App) registerLoreRoutes(rg *gin.RouterGroup, c *controllers) {
	glossary := rg.Group("/glossary")
	{
		glossary.GET("", c.lore.GetGlossary)
		glossary.POST("", c.lore.CreateGlossaryTerm)
		glossary.GET("/category/:category", c.lore.GetGlossaryByCategory)
		glossary.GET("/:term", c.lore.GetGlossaryTerm)
	}

	rg.GET("/characters/:id/relationships", c.lore.GetCharacterRelationships)
	rg.POST("/characters/relationships", c.lore.CreateCharacterRelationship)
	rg.POST("/story-elements", c.lore.CreateStoryElement)
	rg.GET("/audio", c.lore.GetAudioAssets)
	rg.POST("/audio", c.lore.CreateAudioAsset)
}

func (a *App) registerVRRoutes(rg *gin.RouterGroup, c *controllers) {
	vr := rg.Group("/vr")
	{
		vr.GET("/models", c.vr.GetModels)
		vr.POST("/models", c.vr.CreateModel)
		vr.GET("/models/:id", c.vr.GetModel)

		vr.GET("/scenes", c.vr.GetScenes)
		vr.POST("/scenes", c.vr.CreateScene)
		vr.GET("/scenes/featured", c.vr.GetFeaturedScenes)
		vr.GET("/scenes/search", c.vr.SearchScenes)
		vr.GET("/scenes/deity/:deity", c.vr.GetScenesByDeity)
		vr.GET("/scenes/category/:category", c.vr.GetScenesByCategory)
		vr.GET("/scenes/:id", c.vr.GetScene)
	}
}
