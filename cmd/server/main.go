package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/config"
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/handlers"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	freelancerRepo := repository.NewFreelancerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, authService)
	freelancerService := services.NewFreelancerService(freelancerRepo, userRepo)
	projectService := services.NewProjectService(projectRepo, authService)
	proposalService := services.NewProposalService(proposalRepo, projectRepo, freelancerRepo)
	paymentService := services.NewPaymentService(paymentRepo, proposalRepo)
	reviewService := services.NewReviewService(reviewRepo, projectRepo, freelancerRepo)
	messageService := services.NewMessageService(messageRepo, userRepo)
	skillService := services.NewSkillService(skillRepo, freelancerRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret, cfg.TokenExpiresMin)
	userHandler := handlers.NewUserHandler(authService, userService)
	freelancerHandler := handlers.NewFreelancerHandler(freelancerService)
	projectHandler := handlers.NewProjectHandler(authService, projectService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	messageHandler := handlers.NewMessageHandler(messageService)
	skillHandler := handlers.NewSkillHandler(skillService)
	freelancerSkillHandler := handlers.NewFreelancerSkillHandler(skillService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Freelance Marketplace API is running",
		})
	})

	authRequired := middleware.RequireAuth(cfg.JWTSecret)
	adminRequired := middleware.RequireAdmin(authService)

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/login", authHandler.Login)
			users.POST("/logout", authHandler.Logout)
			users.GET("/me", authRequired, authHandler.GetCurrentUser)
			users.GET("", authRequired, adminRequired, userHandler.List)
			users.GET("/:id", authRequired, userHandler.Get)
			users.PUT("/:id", authRequired, userHandler.Update)
			users.PATCH("/:id/password", authRequired, userHandler.ChangePassword)
			users.DELETE("/:id", authRequired, userHandler.Delete)
		}

		freelancers := api.Group("/freelancers")
		{
			freelancers.GET("", freelancerHandler.List)
			freelancers.GET("/:id", freelancerHandler.Get)
			freelancers.POST("", authRequired, freelancerHandler.Create)
			freelancers.PUT("/:id", authRequired, freelancerHandler.Update)
			freelancers.DELETE("/:id", authRequired, freelancerHandler.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/:id", projectHandler.Get)
			projects.POST("", authRequired, projectHandler.Create)
			projects.PUT("/:id", authRequired, projectHandler.Update)
			projects.DELETE("/:id", authRequired, projectHandler.Delete)
		}

		proposals := api.Group("/proposals")
		{
			proposals.GET("", proposalHandler.List)
			proposals.GET("/:id", proposalHandler.Get)
			proposals.POST("", authRequired, proposalHandler.Create)
			proposals.PUT("/:id", authRequired, proposalHandler.Update)
			proposals.DELETE("/:id", authRequired, proposalHandler.Delete)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.List)
			payments.GET("/:id", paymentHandler.Get)
			payments.POST("", authRequired, paymentHandler.Create)
			payments.PUT("/:id", authRequired, paymentHandler.Update)
			payments.DELETE("/:id", authRequired, paymentHandler.Delete)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.POST("", authRequired, reviewHandler.Create)
			reviews.PUT("/:id", authRequired, reviewHandler.Update)
			reviews.DELETE("/:id", authRequired, reviewHandler.Delete)
		}

		messages := api.Group("/messages", authRequired)
		{
			messages.GET("", messageHandler.List)
			messages.GET("/:id", messageHandler.Get)
			messages.POST("", messageHandler.Create)
			messages.PUT("/:id", messageHandler.Update)
			messages.DELETE("/:id", messageHandler.Delete)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.GET("/:id", skillHandler.Get)
			skills.POST("", authRequired, skillHandler.Create)
			skills.PUT("/:id", authRequired, skillHandler.Update)
			skills.DELETE("/:id", authRequired, skillHandler.Delete)
		}

		freelancerSkills := api.Group("/freelancer-skills")
		{
			freelancerSkills.GET("", freelancerSkillHandler.List)
			freelancerSkills.POST("", authRequired, freelancerSkillHandler.Create)
			freelancerSkills.DELETE("", authRequired, freelancerSkillHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
