// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/check2check/backend/internal/integration/entrypoint/controller"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	cycleController       *controller.CycleController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	accountController     *controller.AccountController
	shareController       *controller.ShareController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	cycleController *controller.CycleController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	accountController *controller.AccountController,
	shareController *controller.ShareController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		cycleController:       cycleController,
		transactionController: transactionController,
		goalController:        goalController,
		accountController:     accountController,
		shareController:       shareController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Budget cycle routes (require authentication)
		if r.cycleController != nil && r.authMiddleware != nil {
			cycles := v1.Group("/cycles")
			cycles.Use(r.authMiddleware.Authenticate())
			{
				cycles.POST("", r.cycleController.Start)
				cycles.GET("/active", r.cycleController.GetActive)
				cycles.GET("/completed", r.cycleController.ListCompleted)
				cycles.POST("/:id/close", r.cycleController.Close)

				// Items are addressed by their natural key in the body.
				cycles.POST("/:id/items", r.cycleController.AddItem)
				cycles.PATCH("/:id/items", r.cycleController.UpdateItem)
				cycles.DELETE("/:id/items", r.cycleController.RemoveItem)
				cycles.POST("/:id/items/settle", r.cycleController.SettleItem)
				cycles.POST("/:id/items/unsettle", r.cycleController.UndoSettle)

				if r.transactionController != nil {
					cycles.GET("/:id/transactions", r.transactionController.List)
				}
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.POST("", r.transactionController.Log)
				transactions.DELETE("/:id", r.transactionController.Remove)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/payoff-plan", r.goalController.RankDebts)
				goals.POST("/:id/payments", r.goalController.LogPayment)
				goals.POST("/:id/withdrawals", r.goalController.Withdraw)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Link)
				accounts.POST("/transfers", r.accountController.Transfer)
			}
		}

		// Shared budget routes (require authentication)
		if r.shareController != nil && r.authMiddleware != nil {
			share := v1.Group("/share")
			share.Use(r.authMiddleware.Authenticate())
			{
				share.POST("/invites", r.shareController.Invite)
				share.POST("/accept", r.shareController.Accept)
				share.GET("/requests", r.shareController.ListPending)
				share.POST("/requests", r.shareController.SubmitRequest)
				share.POST("/requests/:id/review", r.shareController.ReviewRequest)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
