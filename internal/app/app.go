package app

import (
	"errors"
	"fmt"
	"time"

	"unibridge_backend/database"
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/config"
	"unibridge_backend/internal/handlers"
	"unibridge_backend/internal/logger"
	"unibridge_backend/internal/middleware"
	"unibridge_backend/internal/models"
	"unibridge_backend/internal/repositories"
	"unibridge_backend/internal/routes"
	"unibridge_backend/internal/services"
	"unibridge_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа сервер не запускаем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	userRepo := repositories.NewUserRepository()
	guard := auth.NewGuard(tokenManager, userRepo)

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(userRepo, tokenManager)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, guard)

	return ginRouter
}

func initializeServices(userRepo repositories.UserRepository, tokenManager *auth.TokenManager) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	studentProfileRepo := repositories.NewStudentProfileRepository()
	organizationProfileRepo := repositories.NewOrganizationProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	applicationRepo := repositories.NewApplicationRepository()

	// --- Инициализация сервисов ---
	return &services.ServiceContainer{
		AuthService:                services.NewAuthService(userRepo, tokenManager),
		UserService:                services.NewUserService(userRepo),
		StudentProfileService:      services.NewStudentProfileService(studentProfileRepo),
		OrganizationProfileService: services.NewOrganizationProfileService(organizationProfileRepo),
		ProjectService:             services.NewProjectService(projectRepo),
		ApplicationService:         services.NewApplicationService(applicationRepo, projectRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:                handlers.NewAuthHandler(baseHandler, sc.AuthService),
		UserHandler:                handlers.NewUserHandler(baseHandler, sc.UserService),
		StudentProfileHandler:      handlers.NewStudentProfileHandler(baseHandler, sc.StudentProfileService),
		OrganizationProfileHandler: handlers.NewOrganizationProfileHandler(baseHandler, sc.OrganizationProfileService),
		ProjectHandler:             handlers.NewProjectHandler(baseHandler, sc.ProjectService),
		ApplicationHandler:         handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого администратора из конфига.
// Публичной регистрации с ролью admin нет, только этот путь.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)

		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}

		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			PasswordHash: hashedPassword,
			Role:         models.UserRoleAdmin,
		}

		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("Successfully created first admin user", "email", adminEmail)
		return nil
	})
}
