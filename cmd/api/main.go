package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/cache"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/logger"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/websocket"
	"log"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Enterprise Tax Administration API
// @version         1.0
// @description     Administrative backend for enterprise records, tax records, social insurance and tax refund processing.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	defer zapLogger.Sync()

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "postgres"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		zapLogger.Fatal("Database connection failed", zap.Error(err))
	}
	zapLogger.Info("Connected to PostgreSQL successfully")

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			redisDB = parsed
		}
	}
	redisClient, err := cache.NewRedisClient(redisAddr, os.Getenv("REDIS_PASSWORD"), redisDB)
	if err != nil {
		zapLogger.Fatal("Redis connection failed", zap.Error(err))
	}
	enterpriseCache := cache.New(redisClient)
	zapLogger.Info("Connected to Redis successfully", zap.String("addr", redisAddr))

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	opLogRepo := repository.NewOperationLogRepository(db)
	enterpriseRepo := repository.NewCachedEnterpriseRepository(
		repository.NewEnterpriseRepository(db), enterpriseCache, zapLogger)
	taxRecordRepo := repository.NewTaxRecordRepository(db)
	refundConfigRepo := repository.NewRefundConfigRepository(db)
	taxRefundRepo := repository.NewTaxRefundRepository(db)
	socialRecordRepo := repository.NewSocialRecordRepository(db)
	financialReportRepo := repository.NewFinancialReportRepository(db)
	versionRecordRepo := repository.NewVersionRecordRepository(db)
	userRepo := repository.NewUserRepository(db)

	userService := service.NewUserService(userRepo, opLogRepo)
	enterpriseService := service.NewEnterpriseService(enterpriseRepo, opLogRepo)
	taxRecordService := service.NewTaxRecordService(taxRecordRepo, opLogRepo, wsHub)
	refundConfigService := service.NewRefundConfigService(refundConfigRepo, txManager, opLogRepo)
	refundService := service.NewRefundService(
		taxRefundRepo, taxRecordRepo, refundConfigService, enterpriseRepo,
		txManager, opLogRepo, wsHub)
	socialRecordService := service.NewSocialRecordService(socialRecordRepo, opLogRepo)
	financialReportService := service.NewFinancialReportService(financialReportRepo, opLogRepo)
	versionRecordService := service.NewVersionRecordService(versionRecordRepo, opLogRepo)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	enterpriseHandler := handler.NewEnterpriseHandler(enterpriseService)
	taxRecordHandler := handler.NewTaxRecordHandler(taxRecordService)
	refundHandler := handler.NewRefundHandler(refundService, refundConfigService)
	socialRecordHandler := handler.NewSocialRecordHandler(socialRecordService)
	financialReportHandler := handler.NewFinancialReportHandler(financialReportService)
	versionRecordHandler := handler.NewVersionRecordHandler(versionRecordService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	userHandler.RegisterRoutes(router.Group(""))
	enterpriseHandler.RegisterRoutes(router.Group(""))
	taxRecordHandler.RegisterRoutes(router.Group(""))
	refundHandler.RegisterRoutes(router.Group(""))
	socialRecordHandler.RegisterRoutes(router.Group(""))
	financialReportHandler.RegisterRoutes(router.Group(""))
	versionRecordHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("Server listening", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		zapLogger.Fatal("Server failed", zap.Error(err))
	}
}
