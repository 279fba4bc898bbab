package app

import (
	"github.com/Pooja123-meshram/talentsprout-project/docs"
	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/middleware"
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerExamRoutes(authGroup, c)
		a.registerProfileRoutes(authGroup, c)
		a.registerBlogRoutes(authGroup, c)
		a.registerProgressRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Exam rules and published posts are readable without login.
		public.GET("/exam/rules", c.exam.ListRules)
		public.GET("/blog/posts", c.blog.ListPublished)
	}
}

func (a *App) registerExamRoutes(rg *gin.RouterGroup, c *controllers) {
	exam := rg.Group("/exam")
	{
		exam.GET("/skills", c.exam.ListSkills)
		exam.POST("/skills/:skillId/start", c.exam.StartAttempt)
		exam.GET("/attempts/:id", c.exam.GetAttempt)
		exam.POST("/attempts/:id/submit", c.exam.SubmitAttempt)
		exam.GET("/attempts/:id/result", c.exam.GetResult)
	}
}

func (a *App) registerProfileRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	profile := rg.Group("/profile")
	{
		profile.GET("/me", c.profile.GetProfile)
		profile.PUT("/me", c.profile.UpdateProfile)
		profile.PUT("/bank", c.profile.UpdateBankDetail)
		profile.POST("/educations", c.profile.AddEducation)
		profile.DELETE("/educations/:id", c.profile.RemoveEducation)
		profile.POST("/social-links", c.profile.AddSocialLink)
		profile.DELETE("/social-links/:id", c.profile.RemoveSocialLink)
	}
}

func (a *App) registerBlogRoutes(rg *gin.RouterGroup, c *controllers) {
	blog := rg.Group("/blog")
	{
		blog.GET("/posts/mine", c.blog.ListMine)
		blog.POST("/posts", c.blog.CreatePost)
		blog.PUT("/posts/:id", c.blog.UpdatePost)
		blog.POST("/posts/:id/submit", c.blog.SubmitForReview)
		blog.DELETE("/posts/:id", c.blog.DeletePost)
		blog.PUT("/posts/:id/preference", c.blog.SetPreference)
	}
}

func (a *App) registerProgressRoutes(rg *gin.RouterGroup, c *controllers) {
	progress := rg.Group("/progress")
	{
		progress.POST("/projects", c.progress.CreateProject)
		progress.GET("/projects", c.progress.ListProjects)
		progress.GET("/projects/:id", c.progress.GetProject)
		progress.PUT("/projects/:id/stages", c.progress.UpdateStage)
		progress.POST("/projects/:id/confirm", c.progress.ConfirmStage)
		progress.POST("/assignments", c.progress.AssignProject)
		progress.GET("/assignments", c.progress.ListAssignments)
		progress.POST("/assignments/:id/respond", c.progress.RespondToAssignment)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Admin),
	)
	{
		admin.POST("/attempts/:id/score", c.exam.RecordScore)
		admin.GET("/blog/pending", c.blog.ListPending)
		admin.POST("/blog/:id/publish", c.blog.Publish)
	}
}
