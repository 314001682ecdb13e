// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/check2check/backend/config"
	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/application/usecase/account"
	"github.com/check2check/backend/internal/application/usecase/auth"
	"github.com/check2check/backend/internal/application/usecase/cycle"
	"github.com/check2check/backend/internal/application/usecase/goal"
	"github.com/check2check/backend/internal/application/usecase/share"
	"github.com/check2check/backend/internal/application/usecase/transaction"
	"github.com/check2check/backend/internal/infra/server/router"
	"github.com/check2check/backend/internal/integration/adapters"
	"github.com/check2check/backend/internal/integration/email"
	"github.com/check2check/backend/internal/integration/email/templates"
	"github.com/check2check/backend/internal/integration/entrypoint/controller"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
	"github.com/check2check/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	cycleRepo := persistence.NewCycleRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	shareRepo := persistence.NewShareRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	var advisorService adapter.AdvisorService
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	if geminiService.IsAvailable() {
		advisorService = geminiService
	} else {
		slog.Info("Payoff advisor disabled, no Gemini API key configured")
	}

	// Create email worker
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates, worker disabled", "error", err)
		} else {
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
		}
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create cycle use cases
	startCycleUseCase := cycle.NewStartCycleUseCase(cycleRepo)
	getActiveCycleUseCase := cycle.NewGetActiveCycleUseCase(cycleRepo, transactionRepo)
	listCompletedCyclesUseCase := cycle.NewListCompletedCyclesUseCase(cycleRepo)
	closeCycleUseCase := cycle.NewCloseCycleUseCase(cycleRepo, transactionRepo)
	addItemUseCase := cycle.NewAddItemUseCase(cycleRepo)
	updateItemUseCase := cycle.NewUpdateItemUseCase(cycleRepo)
	removeItemUseCase := cycle.NewRemoveItemUseCase(cycleRepo, transactionRepo)
	settleItemUseCase := cycle.NewSettleItemUseCase(cycleRepo, transactionRepo)
	undoSettleUseCase := cycle.NewUndoSettleUseCase(cycleRepo, transactionRepo)

	// Create transaction use cases
	logTransactionUseCase := transaction.NewLogTransactionUseCase(cycleRepo, transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(cycleRepo, transactionRepo)
	removeTransactionUseCase := transaction.NewRemoveTransactionUseCase(transactionRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	rankDebtsUseCase := goal.NewRankDebtsUseCase(cycleRepo, transactionRepo, goalRepo, advisorService)
	logPaymentUseCase := goal.NewLogPaymentUseCase(goalRepo, cycleRepo, transactionRepo)
	withdrawUseCase := goal.NewWithdrawUseCase(goalRepo, cycleRepo, transactionRepo)

	// Create account use cases
	linkAccountUseCase := account.NewLinkAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	transferUseCase := account.NewTransferUseCase(accountRepo)

	// Create share use cases
	inviteMemberUseCase := share.NewInviteMemberUseCase(userRepo, shareRepo, emailService, cfg.Email.AppBaseURL)
	acceptInviteUseCase := share.NewAcceptInviteUseCase(userRepo, shareRepo)
	submitActionRequestUseCase := share.NewSubmitActionRequestUseCase(shareRepo, cycleRepo)
	reviewActionRequestUseCase := share.NewReviewActionRequestUseCase(shareRepo, cycleRepo)
	listPendingRequestsUseCase := share.NewListPendingRequestsUseCase(shareRepo, cycleRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	cycleController := controller.NewCycleController(
		startCycleUseCase,
		getActiveCycleUseCase,
		listCompletedCyclesUseCase,
		closeCycleUseCase,
		addItemUseCase,
		updateItemUseCase,
		removeItemUseCase,
		settleItemUseCase,
		undoSettleUseCase,
	)

	transactionController := controller.NewTransactionController(
		logTransactionUseCase,
		listTransactionsUseCase,
		removeTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		rankDebtsUseCase,
		logPaymentUseCase,
		withdrawUseCase,
	)

	accountController := controller.NewAccountController(
		linkAccountUseCase,
		listAccountsUseCase,
		transferUseCase,
	)

	shareController := controller.NewShareController(
		inviteMemberUseCase,
		acceptInviteUseCase,
		submitActionRequestUseCase,
		reviewActionRequestUseCase,
		listPendingRequestsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		cycleController,
		transactionController,
		goalController,
		accountController,
		shareController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}
}
