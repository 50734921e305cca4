package routes

import (
	"fmt"

	"task-manager-backend/internal/api/handlers"
	"task-manager-backend/internal/api/middleware"
	"task-manager-backend/internal/auth"
	"task-manager-backend/internal/config"
	"task-manager-backend/internal/notify"
	"task-manager-backend/internal/repository"
	"task-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources the router is built from
type Dependencies struct {
	DB     *gorm.DB
	Outbox notify.Outbox
	// Health lists the dependencies probed by /health; the database is always included
	Health map[string]handlers.Pinger
	// Registry receives the HTTP metrics; prometheus.DefaultRegisterer when nil
	Registry prometheus.Registerer
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	if cfg.MetricsEnabled {
		registry := deps.Registry
		if registry == nil {
			registry = prometheus.DefaultRegisterer
		}
		router.Use(middleware.NewHTTPMetrics(registry).Middleware())
		gatherer, ok := registry.(prometheus.Gatherer)
		if !ok {
			gatherer = prometheus.DefaultGatherer
		}
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(deps.DB)
	teamRepo := repository.NewTeamRepository(deps.DB)
	taskRepo := repository.NewTaskRepository(deps.DB)
	subtaskRepo := repository.NewSubtaskRepository(deps.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, validate)
	taskService := service.NewTaskService(taskRepo, userRepo, validate)
	subtaskService := service.NewSubtaskService(subtaskRepo, taskRepo, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, deps.Outbox, validate)
	onboardingService := service.NewOnboardingService(userRepo, teamRepo, validate)
	updateCheckService := service.NewUpdateCheckService(taskRepo, userRepo)
	dashboardService := service.NewDashboardService(taskRepo)
	notificationService := service.NewNotificationService(deps.Outbox)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService, userService)

	// Initialize handlers
	probes := map[string]handlers.Pinger{"database": handlers.DatabasePinger(deps.DB)}
	for name, p := range deps.Health {
		probes[name] = p
	}
	healthHandler := handlers.NewHealthHandler(probes)
	authHandler := auth.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	subtaskHandler := handlers.NewSubtaskHandler(subtaskService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	updateCheckHandler := handlers.NewUpdateCheckHandler(updateCheckService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes (no auth required)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/auth/validate", authHandler.ValidateToken)

		// Reachable during onboarding
		v1.GET("/me", onboardingHandler.Me)
		v1.POST("/onboarding/role", onboardingHandler.SelectRole)
		v1.POST("/onboarding/cancel", onboardingHandler.Cancel)
		v1.GET("/notifications", notificationHandler.Drain)

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.POST("/join", teamHandler.JoinTeam)
			teams.GET("/pending-members", teamHandler.PendingMembers)
			teams.POST("/members/:userId/approve", teamHandler.ApproveMember)
			teams.POST("/members/:userId/reject", teamHandler.RejectMember)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
		}

		onboarded := v1.Group("")
		onboarded.Use(authMiddleware.RequireOnboarded())

		tasks := onboarded.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/unread-count", taskHandler.UnreadCount)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/restore", taskHandler.RestoreTask)

			tasks.GET("/:id/subtasks", subtaskHandler.ListSubtasks)
			tasks.POST("/:id/subtasks", subtaskHandler.CreateSubtask)
			tasks.POST("/:id/subtasks/reorder", subtaskHandler.ReorderSubtasks)
			tasks.PUT("/:id/subtasks/:subtaskId", subtaskHandler.UpdateSubtask)
			tasks.DELETE("/:id/subtasks/:subtaskId", subtaskHandler.DeleteSubtask)
		}

		users := onboarded.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/team", userHandler.ListTeamMembers)
			users.PATCH("/:id/role", userHandler.UpdateRole)
		}

		checks := onboarded.Group("/check-updates")
		{
			checks.GET("/tasks", updateCheckHandler.Tasks)
			checks.GET("/dashboard", updateCheckHandler.Dashboard)
			checks.GET("/unread", updateCheckHandler.Unread)
			checks.GET("/users", updateCheckHandler.Users)
			checks.GET("/pending-members", updateCheckHandler.PendingMembers)
		}

		onboarded.GET("/dashboard", dashboardHandler.Get)
	}

	return router, nil
}
