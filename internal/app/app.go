package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inakat_backend/internal/auth"
	"inakat_backend/internal/config"
	"inakat_backend/internal/database"
	"inakat_backend/internal/email"
	"inakat_backend/internal/handlers"
	"inakat_backend/internal/logger"
	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
	"inakat_backend/internal/routes"
	"inakat_backend/internal/services"
	"inakat_backend/internal/storage"
	"inakat_backend/internal/validator"
	"inakat_backend/pkg/apperrors"
)

// Run boots the whole application: config, database, dependency wiring,
// routes, listen. Blocks until the server stops.
func Run() error {
	// .env is optional; real deploys set the environment directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	specialtyRepo := repositories.NewSpecialtyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	pricingRepo := repositories.NewPricingRuleRepository(db)
	requestRepo := repositories.NewCompanyRequestRepository(db)

	// Infrastructure
	tokenTTL := time.Duration(cfg.JWT.TTLDays) * 24 * time.Hour
	tokens := auth.NewManager(cfg.JWT.Secret, tokenTTL)

	store, err := storage.New(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return fmt.Errorf("storage init failed: %w", err)
	}

	mailer := buildMailer(cfg)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	specialtyService := services.NewSpecialtyService(specialtyRepo, pricingRepo, candidateRepo, jobRepo)
	jobService := services.NewJobService(jobRepo, specialtyRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	candidateService := services.NewCandidateService(candidateRepo, specialtyRepo)
	pricingService := services.NewPricingService(pricingRepo, specialtyRepo)
	requestService := services.NewCompanyRequestService(requestRepo, userRepo, mailer)
	uploadService := services.NewUploadService(store)
	userService := services.NewUserService(userRepo)

	if err := seedFirstAdmin(userRepo, cfg); err != nil {
		return fmt.Errorf("admin seed failed: %w", err)
	}

	// Handlers
	v := validator.New()
	cookieMaxAge := int(tokenTTL.Seconds())

	h := routes.Handlers{
		Auth:           handlers.NewAuthHandler(v, authService, cookieMaxAge, cfg.IsProduction()),
		Specialty:      handlers.NewSpecialtyHandler(v, specialtyService),
		Job:            handlers.NewJobHandler(v, jobService),
		Application:    handlers.NewApplicationHandler(v, applicationService),
		Candidate:      handlers.NewCandidateHandler(v, candidateService),
		CompanyRequest: handlers.NewCompanyRequestHandler(v, requestService),
		Pricing:        handlers.NewPricingHandler(v, pricingService),
		User:           handlers.NewUserHandler(v, userService),
		Upload:         handlers.NewUploadHandler(v, uploadService),
		File:           handlers.NewFileHandler(store),
		Health:         handlers.NewHealthHandler(db),
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	routes.Setup(router, h, tokens)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// buildMailer returns the SMTP provider when configured, a noop otherwise.
// The app stays functional without mail; approvals just do not notify.
func buildMailer(cfg *config.Config) email.Provider {
	mailCfg := email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if mailCfg.Validate() != nil {
		logger.Warn("SMTP not configured, transactional mail disabled")
		return email.NoopProvider{}
	}
	provider, err := email.NewSMTPProvider(mailCfg)
	if err != nil {
		logger.Warn("SMTP provider init failed, transactional mail disabled", "error", err)
		return email.NoopProvider{}
	}
	return provider
}

// seedFirstAdmin provisions the configured admin account when no admin
// exists yet. Without one the admin panel would be unreachable on a fresh
// database.
func seedFirstAdmin(userRepo repositories.UserRepository, cfg *config.Config) error {
	count, err := userRepo.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("no admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &models.User{
		Email:           cfg.Admin.Email,
		PasswordHash:    hash,
		Nombre:          cfg.Admin.Nombre,
		Role:            models.UserRoleAdmin,
		IsActive:        true,
		EmailVerifiedAt: &now,
	}
	if err := userRepo.Create(admin); err != nil {
		// Lost a boot race with another replica; the admin exists either way.
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("seeded initial admin account", "email", admin.Email)
	return nil
}

// requestLogger emits one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTPLog(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
