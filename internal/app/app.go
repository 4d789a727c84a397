package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crm_backend/internal/auth"
	"crm_backend/internal/config"
	"crm_backend/internal/handlers"
	"crm_backend/internal/logger"
	"crm_backend/internal/middleware"
	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
	"crm_backend/internal/routes"
	"crm_backend/internal/services"
	"crm_backend/internal/validator"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine with every dependency wired. Tests
// use it directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	brandRepo := repositories.NewBrandRepository(gormDB)
	billingRepo := repositories.NewBillingRepository(gormDB)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo, billingRepo)
	brandService := services.NewBrandService(brandRepo, billingRepo)
	billingService := services.NewBillingService(billingRepo)
	connectionService := services.NewConnectionService(profileRepo, brandRepo, billingRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(base, authService, userService),
		UserHandler:       handlers.NewUserHandler(base, userService),
		ProfileHandler:    handlers.NewProfileHandler(base, profileService, connectionService),
		BrandHandler:      handlers.NewBrandHandler(base, brandService, connectionService),
		BillingHandler:    handlers.NewBillingHandler(base, billingService),
		ConnectionHandler: handlers.NewConnectionHandler(base, connectionService),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, tokens, appHandlers)
	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Brand{},
		&models.POC{},
		&models.BillingDetails{},
		&models.BankAccount{},
	)
}

// seedFirstAdmin creates the bootstrap admin account on first start so
// the admin-only user management endpoints are reachable. Skipped when
// the credentials are not configured or an admin already exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials not configured, skipping admin seeding")
		return nil
	}

	var admin models.User
	err := db.Where("role = ?", models.UserRoleAdmin).First(&admin).Error
	if err == nil {
		logger.Info("Admin account already present, skipping admin seeding")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin = models.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user created", "email", cfg.Admin.Email)
	return nil
}
