package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/freelance-marketplace-api/internal/auth"
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	db *gorm.DB

	authService       *services.AuthService
	userService       *services.UserService
	freelancerService *services.FreelancerService
	projectService    *services.ProjectService
	proposalService   *services.ProposalService
	paymentService    *services.PaymentService
	reviewService     *services.ReviewService
	messageService    *services.MessageService
	skillService      *services.SkillService

	router *gin.Engine
}

// setupTestEnv builds an in-memory database, the full service graph, and a
// router wired the same way as the server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.FreelancerProfile{},
		&models.Project{},
		&models.Proposal{},
		&models.Payment{},
		&models.Review{},
		&models.Message{},
		&models.Skill{},
		&models.FreelancerSkill{},
	)
	require.NoError(t, err)
	require.NoError(t, database.SeedRoles(db))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	freelancerRepo := repository.NewFreelancerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	env := &testEnv{db: db}
	env.authService = services.NewAuthService(userRepo)
	env.userService = services.NewUserService(userRepo, env.authService)
	env.freelancerService = services.NewFreelancerService(freelancerRepo, userRepo)
	env.projectService = services.NewProjectService(projectRepo, env.authService)
	env.proposalService = services.NewProposalService(proposalRepo, projectRepo, freelancerRepo)
	env.paymentService = services.NewPaymentService(paymentRepo, proposalRepo)
	env.reviewService = services.NewReviewService(reviewRepo, projectRepo, freelancerRepo)
	env.messageService = services.NewMessageService(messageRepo, userRepo)
	env.skillService = services.NewSkillService(skillRepo, freelancerRepo)

	authHandler := NewAuthHandler(env.authService, testSecret, 30)
	userHandler := NewUserHandler(env.authService, env.userService)
	freelancerHandler := NewFreelancerHandler(env.freelancerService)
	projectHandler := NewProjectHandler(env.authService, env.projectService)
	proposalHandler := NewProposalHandler(env.proposalService)
	paymentHandler := NewPaymentHandler(env.paymentService)
	reviewHandler := NewReviewHandler(env.reviewService)
	messageHandler := NewMessageHandler(env.messageService)
	skillHandler := NewSkillHandler(env.skillService)
	freelancerSkillHandler := NewFreelancerSkillHandler(env.skillService)

	r := gin.New()
	authRequired := middleware.RequireAuth(testSecret)
	adminRequired := middleware.RequireAdmin(env.authService)

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

	env.router = r
	return env
}

// createUser registers a user through the auth service and returns it.
func (env *testEnv) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := env.authService.Register(services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

// createAdmin registers a user and promotes them to the admin role.
func (env *testEnv) createAdmin(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := env.createUser(t, name, email)

	var role models.Role
	require.NoError(t, env.db.Where("name = ?", models.RoleAdmin).First(&role).Error)
	user.RoleID = role.ID
	require.NoError(t, env.db.Save(user).Error)
	return user
}

// createFreelancer creates a profile for the given user.
func (env *testEnv) createFreelancer(t *testing.T, userID uint64) *models.FreelancerProfile {
	t.Helper()
	profile, err := env.freelancerService.Create(services.CreateFreelancerInput{
		UserID: userID,
		Bio:    "Experienced developer",
	})
	require.NoError(t, err)
	return profile
}

// token issues a signed access token for the user.
func (env *testEnv) token(t *testing.T, userID uint64) string {
	t.Helper()
	token, err := auth.Sign(testSecret, userID, 30)
	require.NoError(t, err)
	return token
}

// request performs an HTTP request against the test router. A non-empty token
// is carried in the Authorization header.
func (env *testEnv) request(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
