package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-admin-api/api/swagger"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/cache"
	"github.com/noah-isme/school-admin-api/pkg/config"
	"github.com/noah-isme/school-admin-api/pkg/database"
	"github.com/noah-isme/school-admin-api/pkg/idgen"
	"github.com/noah-isme/school-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-admin-api/pkg/middleware/requestid"
)

// @title School Admin API
// @version 1.0.0
// @description Administrative API for student/teacher registration, fee collection and materials publishing
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("record store unreachable", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Search.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			// Search still works without the cache, just slower.
			logr.Sugar().Warnw("redis unavailable, search cache disabled", "error", err)
			redisClient = nil
		}
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	generator := idgen.New(nil)

	studentSvc := service.NewStudentService(studentRepo, cacheRepo, generator, nil, logr, metricsSvc, cfg.Search.CacheTTL)
	paymentSvc := service.NewPaymentService(studentRepo, paymentRepo, cacheRepo, generator, logr, metricsSvc)
	teacherSvc := service.NewTeacherService(teacherRepo, generator, nil, logr, cfg.Registry.TeacherCodePrefix)
	materialSvc := service.NewMaterialService(materialRepo, nil, logr)

	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(studentRepo, paymentRepo, logr)
	}

	studentHandler := handler.NewStudentHandler(studentSvc, exportSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, exportSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	materialHandler := handler.NewMaterialHandler(materialSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		students := api.Group("/students")
		students.GET("", studentHandler.List)
		students.POST("", studentHandler.Register)
		students.GET("/export", studentHandler.Export)
		students.GET("/:code", studentHandler.Get)

		payments := api.Group("/payments")
		payments.GET("/:code", paymentHandler.Lookup)
		payments.POST("/:code", paymentHandler.Pay)
		payments.GET("/:code/history", paymentHandler.History)
		payments.GET("/:code/receipt", paymentHandler.Receipt)

		teachers := api.Group("/teachers")
		teachers.GET("", teacherHandler.List)
		teachers.POST("", teacherHandler.Register)

		materials := api.Group("/materials")
		materials.GET("", materialHandler.List)
		materials.POST("", materialHandler.Publish)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
