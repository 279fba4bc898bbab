package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/controller"
	"github.com/Pooja123-meshram/talentsprout-project/internal/repository"
	"github.com/Pooja123-meshram/talentsprout-project/internal/service"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/database"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/logger"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/monitoring"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/security"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	skill    *repository.SkillRepository
	question *repository.QuestionRepository
	attempt  *repository.AttemptRepository
	rule     *repository.ExamRuleRepository
	profile  *repository.ProfileRepository
	blog     *repository.BlogRepository
	project  *repository.ProjectRepository
}

type services struct {
	auth     *service.AuthService
	exam     *service.ExamService
	profile  *service.ProfileService
	blog     *service.BlogService
	progress *service.ProgressService
}

type controllers struct {
	auth     *controller.AuthController
	exam     *controller.ExamController
	profile  *controller.ProfileController
	blog     *controller.BlogController
	progress *controller.ProgressController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig is invoked by the config watcher when the file on disk
// changes. Components that captured the old config keep it; callbacks
// exist for the ones that opt in to live reloads.
func (a *App) ReloadConfig(newCfg interface{}) {
	cfg, ok := newCfg.(*config.Config)
	if !ok {
		return
	}
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		skill:    repository.NewSkillRepository(db),
		question: repository.NewQuestionRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		rule:     repository.NewExamRuleRepository(db),
		profile:  repository.NewProfileRepository(db),
		blog:     repository.NewBlogRepository(db),
		project:  repository.NewProjectRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		exam:     service.NewExamService(repos.skill, repos.question, repos.attempt, repos.rule),
		profile:  service.NewProfileService(repos.profile),
		blog:     service.NewBlogService(repos.blog, rdb),
		progress: service.NewProgressService(repos.project),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		exam:     controller.NewExamController(s.exam),
		profile:  controller.NewProfileController(s.profile),
		blog:     controller.NewBlogController(s.blog),
		progress: controller.NewProgressController(s.progress),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.blog.ProcessScheduledPublishes(); err != nil {
				logger.Log.Error("scheduled publish error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("talentsprout", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
