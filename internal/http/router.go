package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/config"
	"github.com/iwansal64/report-web-api/internal/http/handlers"
	"github.com/iwansal64/report-web-api/internal/http/middleware"
	"github.com/iwansal64/report-web-api/internal/services"
)

type Dependencies struct {
	Config        *config.Config
	Tokens        *services.TokenService
	Registrations *services.RegistrationService
	Reports       *services.ReportService
	Logger        *slog.Logger
	RateLimiter   *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.Tokens, deps.Config.SessionTTL)
	signupHandler := handlers.NewSignupHandler(deps.Registrations)
	reportHandler := handlers.NewReportHandler(deps.Reports)
	picHandler := handlers.NewPICHandler(deps.Reports)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api")
	{
		userGroup := api.Group("/user")
		userGroup.Use(deps.RateLimiter.Middleware())
		userGroup.POST("/login", authHandler.Login)
		userGroup.POST("/signup", signupHandler.Signup)
		userGroup.POST("/verify_signup", signupHandler.VerifySignup)
		userGroup.POST("/setup_signup", signupHandler.SetupSignup)
		userGroup.POST("/logout", authHandler.Logout)

		reportGroup := api.Group("/report")
		reportGroup.POST("/add", middleware.SessionAuth(deps.Tokens), reportHandler.Add)
		reportGroup.GET("/get", middleware.TeacherOnly(deps.Tokens), reportHandler.List)
		reportGroup.PUT("/change_status", middleware.TeacherOnly(deps.Tokens), reportHandler.ChangeStatus)
		reportGroup.DELETE("/delete", middleware.TeacherOnly(deps.Tokens), reportHandler.Delete)
		reportGroup.PUT("/update", middleware.AdminSecret(deps.Config.AdminToken), reportHandler.Update)

		picGroup := api.Group("/pic")
		picGroup.GET("/get", middleware.SessionAuth(deps.Tokens), picHandler.List)
	}

	return router
}
