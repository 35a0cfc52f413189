package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sensor-ops/internal/api/handler"
	"sensor-ops/internal/api/middleware"
	"sensor-ops/internal/pkg/config"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/internal/repository"
	"sensor-ops/internal/service"
	"sensor-ops/pkg/constants"
)

// Setup wires repositories, services and handlers onto the engine.
func Setup(cfg *config.Config, loader *sheets.Client, writer *sheets.Writer) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userRepo := repository.NewUserRepository(loader)
	siteRepo := repository.NewSiteRepository(loader)
	pmRepo := repository.NewPMRepository(loader)
	taskRepo := repository.NewTaskRepository(loader)
	assetRepo := repository.NewAssetRepository(loader)
	equipmentRepo := repository.NewEquipmentRepository(loader)
	teamRepo := repository.NewTeamRepository(loader)
	learningRepo := repository.NewLearningRepository(loader)
	manualRepo := repository.NewManualRepository(loader)

	authService := service.NewAuthService(&cfg.Auth, userRepo)
	dashboardService := service.NewDashboardService(siteRepo, pmRepo, taskRepo)
	siteService := service.NewSiteService(siteRepo, pmRepo, taskRepo, assetRepo, writer)
	taskService := service.NewTaskService(taskRepo, writer)
	toolsService := service.NewToolsService(equipmentRepo, writer)
	teamService := service.NewTeamService(teamRepo, taskRepo)
	learningService := service.NewLearningService(learningRepo)
	manualService := service.NewManualService(manualRepo)
	exportService := service.NewExportService(siteService, toolsService)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	siteHandler := handler.NewSiteHandler(siteService)
	taskHandler := handler.NewTaskHandler(taskService)
	toolsHandler := handler.NewToolsHandler(toolsService)
	teamHandler := handler.NewTeamHandler(teamService)
	learningHandler := handler.NewLearningHandler(learningService)
	manualHandler := handler.NewManualHandler(manualService)
	exportHandler := handler.NewExportHandler(exportService)

	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/auth/me", authHandler.GetMe)
			authed.GET("/auth/views", authHandler.GetViews)

			// Views every role may open
			authed.GET("/dashboard", dashboardHandler.Overview)
			authed.GET("/sites", siteHandler.ListNames)
			authed.GET("/sites/detail", siteHandler.Detail)
			authed.GET("/manuals", manualHandler.List)

			// Crew-only views
			crew := authed.Group("")
			crew.Use(middleware.RequireRoles(constants.RoleAdmin, constants.RoleMember))
			{
				crew.GET("/sites/pm-plan", siteHandler.PMPlanBoard)
				crew.POST("/sites/pm-status", siteHandler.SetPMStatus)

				crew.GET("/workload/my", taskHandler.MyWorkload)
				crew.GET("/workload/team", taskHandler.TeamWorkload)
				crew.POST("/tasks", taskHandler.Create)

				crew.GET("/tools/stock", toolsHandler.Stock)
				crew.GET("/tools/history", toolsHandler.History)
				crew.POST("/tools/transactions", toolsHandler.RecordTransaction)

				crew.GET("/team/profiles", teamHandler.Profiles)

				crew.GET("/learning/topics", learningHandler.Topics)
				crew.GET("/learning/quiz", learningHandler.Quiz)
				crew.POST("/learning/quiz/answer", learningHandler.GradeAnswer)
				crew.GET("/learning/calculators", learningHandler.Calculators)
				crew.POST("/learning/calculators/evaluate", learningHandler.Calculate)

				crew.GET("/export/pm-status.xlsx", exportHandler.PMStatus)
				crew.GET("/export/stock.xlsx", exportHandler.Stock)
			}
		}
	}

	return r
}
