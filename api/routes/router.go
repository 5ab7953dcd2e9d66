package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"praxis/internal/appointments"
	"praxis/internal/assessments"
	"praxis/internal/auth"
	"praxis/internal/notifications"
	"praxis/internal/payments"
	"praxis/internal/questionnaires"
	"praxis/internal/responses"
	"praxis/internal/roles"
	"praxis/internal/shared/config"
	"praxis/internal/shared/database"
	"praxis/internal/shared/middleware"
	"praxis/internal/users"
	"praxis/pkg/cache"
	"praxis/pkg/logger"
	"praxis/pkg/ratelimit"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	authMiddleware *middleware.AuthMiddleware

	// shared across domains
	userRepo             users.Repository
	roleRepo             roles.Repository
	questionnaireService questionnaires.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	r.roleRepo = roles.NewRepository(r.db.PostgreSQL)
	r.userRepo = users.NewRepository(r.db.PostgreSQL)

	tokens := auth.NewTokenManager(r.config.JWT)
	tokenStore := r.buildTokenStore(tokens)
	r.authMiddleware = middleware.NewAuthMiddleware(tokens, r.userRepo)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api, tokens, tokenStore)
		r.setupRoleRoutes(api)
		r.setupUserRoutes(api)
		r.setupQuestionnaireRoutes(api)
		r.setupResponseRoutes(api)
		r.setupAppointmentRoutes(api)
		r.setupPaymentRoutes(api)
		r.setupAssessmentRoutes(api)
	}
}

// buildTokenStore prefers Redis so refresh sessions survive restarts; the
// in-memory store keeps single-node development working without Redis.
func (r *Router) buildTokenStore(tokens *auth.TokenManager) auth.RefreshTokenStore {
	if r.db.Redis != nil {
		return auth.NewRedisTokenStore(r.db.Redis, tokens.RefreshTTL())
	}
	return auth.NewMemoryTokenStore()
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "praxis-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "praxis-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup, tokens *auth.TokenManager, store auth.RefreshTokenStore) {
	authRepo := auth.NewRepository(r.db.PostgreSQL)
	authService := auth.NewService(authRepo, tokens, store, r.config)
	authController := auth.NewController(authService, r.config)

	var throttle []gin.HandlerFunc
	if r.config.RateLimit.Enabled && r.db.Redis != nil {
		limiter := ratelimit.NewRateLimiter(r.db.Redis, r.config.RateLimit)
		throttle = append(throttle, ratelimit.Middleware(limiter))
	}

	auth.SetupAuthRoutes(rg, authController, r.authMiddleware.Authenticate(), throttle...)
}

// setupRoleRoutes configures role management routes
func (r *Router) setupRoleRoutes(rg *gin.RouterGroup) {
	roleService := roles.NewService(r.roleRepo)
	roleController := roles.NewController(roleService)

	roles.SetupRoleRoutes(rg, roleController,
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRoles(roles.RoleAdmin),
	)
}

// setupUserRoutes configures user administration routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userService := users.NewService(r.userRepo)
	userController := users.NewController(userService)

	users.SetupUserRoutes(rg, userController,
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRoles(roles.RoleAdmin),
	)
}

// setupQuestionnaireRoutes configures questionnaire management routes
func (r *Router) setupQuestionnaireRoutes(rg *gin.RouterGroup) {
	questionnaireRepo := questionnaires.NewRepository(r.db.PostgreSQL)

	var cacheService cache.Service
	if r.db.Redis != nil {
		cacheService = cache.NewService(r.db.Redis)
	}
	r.questionnaireService = questionnaires.NewService(questionnaireRepo, cacheService, r.config.Redis.CacheTTL)
	questionnaireController := questionnaires.NewController(r.questionnaireService)

	questionnaires.SetupQuestionnaireRoutes(rg, questionnaireController,
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRoles(roles.RoleAdmin),
	)
}

// setupResponseRoutes configures questionnaire response routes
func (r *Router) setupResponseRoutes(rg *gin.RouterGroup) {
	responseRepo := responses.NewRepository(r.db.PostgreSQL)
	responseService := responses.NewService(responseRepo, r.questionnaireService)
	responseController := responses.NewController(responseService)

	responses.SetupResponseRoutes(rg, responseController,
		r.authMiddleware.RequireRoles(roles.RoleAdmin, roles.RoleClient),
		r.authMiddleware.RequireRoles(roles.RoleAdmin, roles.RoleTherapist),
		r.authMiddleware.Authenticate(),
	)
}

// setupAppointmentRoutes configures appointment booking routes
func (r *Router) setupAppointmentRoutes(rg *gin.RouterGroup) {
	appointmentRepo := appointments.NewRepository(r.db.PostgreSQL)
	appointmentService := appointments.NewService(appointmentRepo, r.producer, logger.GetDefault())
	appointmentController := appointments.NewController(appointmentService)

	appointments.SetupAppointmentRoutes(rg, appointmentController,
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRoles(roles.RoleAdmin, roles.RoleTherapist),
		r.authMiddleware.RequireRoles(roles.RoleAdmin),
	)
}

// setupPaymentRoutes configures payment bookkeeping routes
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	paymentRepo := payments.NewRepository(r.db.PostgreSQL)
	paymentService := payments.NewService(paymentRepo)
	paymentController := payments.NewController(paymentService)

	payments.SetupPaymentRoutes(rg, paymentController,
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRoles(roles.RoleAdmin),
	)
}

// setupAssessmentRoutes configures intake assessment routes
func (r *Router) setupAssessmentRoutes(rg *gin.RouterGroup) {
	assessmentRepo := assessments.NewRepository(r.db.PostgreSQL)
	assessmentService := assessments.NewService(assessmentRepo, r.userRepo, r.roleRepo, r.config.Auth.BcryptCost)
	assessmentController := assessments.NewController(assessmentService)

	assessments.SetupAssessmentRoutes(rg, assessmentController,
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRoles(roles.RoleAdmin),
	)
}
