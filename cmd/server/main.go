package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/plantrent/backend/internal/application/billing"
	catalogapp "github.com/plantrent/backend/internal/application/catalog"
	contractapp "github.com/plantrent/backend/internal/application/contract"
	directoryapp "github.com/plantrent/backend/internal/application/directory"
	"github.com/plantrent/backend/internal/domain/billing"
	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/plantrent/backend/internal/infrastructure/auth"
	"github.com/plantrent/backend/internal/infrastructure/config"
	"github.com/plantrent/backend/internal/infrastructure/event"
	"github.com/plantrent/backend/internal/infrastructure/lock"
	"github.com/plantrent/backend/internal/infrastructure/logger"
	"github.com/plantrent/backend/internal/infrastructure/persistence"
	"github.com/plantrent/backend/internal/infrastructure/telemetry"
	"github.com/plantrent/backend/internal/interfaces/http/handler"
	"github.com/plantrent/backend/internal/interfaces/http/middleware"
	"github.com/plantrent/backend/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	_ "github.com/plantrent/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			PlantRent Backend API
//	@version		1.0
//	@description	Plant rental management backend: customer directory, plant catalog, rental contracts and monthly statement generation with VAT.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/plantrent/backend
//	@contact.email	support@plantrent.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting PlantRent Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize OpenTelemetry providers. Each constructor degrades to a
	// no-op when telemetry is disabled, so the rest of the wiring does not
	// branch on cfg.Telemetry.Enabled.
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	logsProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		if err := logsProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()

	// Once the OTEL logs exporter is up, rebuild the application logger so
	// every entry is written to the configured output and the collector.
	if logsProvider.IsEnabled() {
		bridged, err := telemetry.CreateBridgedLoggerFromConfig(&logger.Config{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			Output:     cfg.Log.Output,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		}, logsProvider, cfg.Telemetry.ServiceName)
		if err != nil {
			log.Warn("Failed to bridge logger to OTEL, keeping local-only logger", zap.Error(err))
		} else {
			log = bridged
			log.Info("Logger bridged to OTEL collector")
		}
	}

	// Continuous profiling (Pyroscope)
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.PyroscopeEndpoint,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()

	// Link traces to profiles when both are running
	if profiler.IsEnabled() && tracerProvider.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel,
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
	)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(cfg.Database.DBName); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		} else {
			log.Info("Database query tracing enabled")
		}
	}

	// Initialize repositories
	statementRepo := persistence.NewStatementRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	plantTypeRepo := persistence.NewGormPlantTypeRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)

	// Initialize event bus and subscribe the audit trail
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Statement mutation lock: Redis-backed when configured, in-process
	// otherwise. The partial unique index on monthly_statements remains the
	// hard backstop either way.
	lockerFactory := lock.NewLockerFactory(cfg.Redis, lock.WithLogger(log))
	locker, err := lockerFactory.CreateLocker()
	if err != nil {
		log.Fatal("Failed to create statement mutation locker", zap.Error(err))
	}

	// Billing policy in effect for this process
	billingCfg := billing.Config{
		VATRatePercent:      decimal.NewFromFloat(cfg.Billing.VATRatePercent),
		BoundaryDay:         cfg.Billing.BoundaryDay,
		Currency:            valueobject.Currency(cfg.Billing.Currency),
		RequireConfirmation: cfg.Billing.RequireConfirmation,
	}
	if err := billingCfg.Validate(); err != nil {
		log.Fatal("Invalid billing configuration", zap.Error(err))
	}
	log.Info("Billing policy loaded",
		zap.String("vat_rate_percent", billingCfg.VATRatePercent.String()),
		zap.Int("boundary_day", billingCfg.BoundaryDay),
		zap.String("currency", string(billingCfg.Currency)),
		zap.Bool("require_confirmation", billingCfg.RequireConfirmation),
	)

	// Initialize application services
	ledger := contractapp.NewContractAssignmentLedger(contractRepo)
	statementService := billingapp.NewStatementService(statementRepo, customerRepo, ledger, locker, eventBus, billingCfg)
	customerService := directoryapp.NewCustomerService(customerRepo, eventBus)
	plantTypeService := catalogapp.NewPlantTypeService(plantTypeRepo)
	contractService := contractapp.NewContractService(contractRepo, customerRepo, plantTypeRepo, eventBus)

	// Billing metrics: statement counters plus a periodic gauge sweep over
	// the confirmation backlog and active contracts
	if meterProvider.IsEnabled() {
		billingMetrics, err := telemetry.NewBillingMetrics(telemetry.BillingMetricsConfig{
			Meter:             meterProvider.Meter("billing"),
			Logger:            log,
			StatementProvider: telemetry.NewGormStatementMetricsProvider(db.DB),
		})
		if err != nil {
			log.Warn("Failed to initialize billing metrics", zap.Error(err))
		} else {
			statementService.SetBillingMetrics(billingMetrics)
			billingMetrics.StartPeriodicCollection(context.Background(), 5*time.Minute)
			defer billingMetrics.Stop()
		}
	}

	// Bearer token verification. Tokens are issued by the upstream identity
	// service; this process only verifies them. Revocation checks need Redis.
	verifier := auth.NewTokenVerifier(cfg.Auth)
	var revocations auth.RevocationList
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		revocations = auth.NewRedisRevocationListWithClient(redisClient)
		log.Info("Token revocation checks enabled")
	}

	// Initialize HTTP handlers
	statementHandler := handler.NewStatementHandler(statementService)
	customerHandler := handler.NewCustomerHandler(customerService)
	plantTypeHandler := handler.NewPlantTypeHandler(plantTypeService)
	contractHandler := handler.NewContractHandler(contractService)
	systemHandler := handler.NewSystemHandler(handler.SystemInfo{
		Name:        cfg.App.Name,
		Environment: cfg.App.Env,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Tracing + SpanErrorMarker - Span per request, errors marked
	// 4. Logger - Log requests with trace correlation
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	// 9. HTTPMetrics - RED metrics per route
	// 10. Profiling - Label profiles with controller/route
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// HTTP metrics
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Enabled:       cfg.Telemetry.Enabled,
	}))

	// Profile labels per request
	profilingConfig := middleware.DefaultProfilingConfig()
	profilingConfig.Enabled = profiler.IsEnabled()
	engine.Use(middleware.ProfilingWithConfig(profilingConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint, protected per config
	swaggerConfig := middleware.SwaggerConfig{
		Enabled:     cfg.Swagger.Enabled,
		RequireAuth: cfg.Swagger.RequireAuth,
		AllowedIPs:  cfg.Swagger.AllowedIPs,
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(swaggerConfig, middleware.JWTAuthMiddleware(verifier)),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.JWTMiddlewareConfig{
		Verifier:    verifier,
		Revocations: revocations,
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Enrich spans with the authenticated user once JWT has run
	r.Use(middleware.TracingAttributeInjector())

	// Billing domain (monthly statements, billing periods)
	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.POST("/statements/generate", statementHandler.Generate)
	billingRoutes.POST("/statements/generate-all", statementHandler.GenerateAll)
	billingRoutes.GET("/statements", statementHandler.List)
	billingRoutes.GET("/statements/:id", statementHandler.GetByID)
	billingRoutes.POST("/statements/:id/confirm", statementHandler.Confirm)
	billingRoutes.DELETE("/statements/:id", statementHandler.SoftDelete)
	billingRoutes.POST("/statements/:id/restore", statementHandler.Restore)
	billingRoutes.PUT("/statements/:id/notes", statementHandler.UpdateNotes)
	billingRoutes.GET("/periods/:year/:month", statementHandler.ComputePeriod)

	// Directory domain (customers)
	directoryRoutes := router.NewDomainGroup("directory", "/directory")
	directoryRoutes.POST("/customers", customerHandler.Create)
	directoryRoutes.GET("/customers", customerHandler.List)
	directoryRoutes.GET("/customers/:id", customerHandler.GetByID)
	directoryRoutes.GET("/customers/code/:code", customerHandler.GetByCode)
	directoryRoutes.PUT("/customers/:id", customerHandler.Update)
	directoryRoutes.POST("/customers/:id/transition", customerHandler.Transition)

	// Catalog domain (plant types)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/plant-types", plantTypeHandler.Create)
	catalogRoutes.GET("/plant-types", plantTypeHandler.List)
	catalogRoutes.GET("/plant-types/:id", plantTypeHandler.GetByID)
	catalogRoutes.GET("/plant-types/code/:code", plantTypeHandler.GetByCode)
	catalogRoutes.PUT("/plant-types/:id", plantTypeHandler.Update)
	catalogRoutes.POST("/plant-types/:id/retire", plantTypeHandler.Retire)
	catalogRoutes.POST("/plant-types/:id/reinstate", plantTypeHandler.Reinstate)

	// Contract domain (rental contracts, assignments, exchanges)
	contractRoutes := router.NewDomainGroup("contract", "/contracts")
	contractRoutes.POST("", contractHandler.Create)
	contractRoutes.GET("", contractHandler.List)
	contractRoutes.GET("/:id", contractHandler.GetByID)
	contractRoutes.POST("/:id/items", contractHandler.AddItem)
	contractRoutes.POST("/:id/items/:item_id/end", contractHandler.EndItem)
	contractRoutes.POST("/:id/items/:item_id/exchanges", contractHandler.RecordExchange)
	contractRoutes.POST("/:id/activate", contractHandler.Activate)
	contractRoutes.POST("/:id/terminate", contractHandler.Terminate)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(billingRoutes).
		Register(directoryRoutes).
		Register(catalogRoutes).
		Register(contractRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
