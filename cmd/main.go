package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	airportPickupHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/airport_pickup_price"
	calculatePriceHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/calculate_price"
	createQuotationHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/create_quotation"
	createSessionHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/delete_session"
	galleryBulkDeleteHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/gallery_bulk_delete"
	galleryBulkUploadHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/gallery_bulk_upload"
	getQuotationHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/get_quotation"
	listGalleryHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/list_gallery"
	listQuotationsHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/list_quotations"
	sendQuotationHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/send_quotation"
	updateQuotationStatusHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/update_quotation_status"
	uploadImageHandler "github.com/m04kA/SMC-TourService/internal/api/handlers/upload_image"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/config"
	"github.com/m04kA/SMC-TourService/internal/domain"
	sessionStore "github.com/m04kA/SMC-TourService/internal/infra/session"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	galleryRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/gallery"
	invoiceRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-TourService/internal/infra/storage/migrations"
	quotationRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/quotation"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	cloudinaryClient "github.com/m04kA/SMC-TourService/internal/integrations/cloudinary"
	sendgridClient "github.com/m04kA/SMC-TourService/internal/integrations/sendgrid"
	galleryService "github.com/m04kA/SMC-TourService/internal/service/gallery"
	quotationsService "github.com/m04kA/SMC-TourService/internal/service/quotations"
	sessionsService "github.com/m04kA/SMC-TourService/internal/service/sessions"
	airportPickupUC "github.com/m04kA/SMC-TourService/internal/usecase/airport_pickup_price"
	calculatePriceUC "github.com/m04kA/SMC-TourService/internal/usecase/calculate_price"
	createQuotationUC "github.com/m04kA/SMC-TourService/internal/usecase/create_quotation"
	galleryBulkDeleteUC "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_delete"
	galleryBulkUploadUC "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_upload"
	sendQuotationUC "github.com/m04kA/SMC-TourService/internal/usecase/send_quotation"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/logger"
	"github.com/m04kA/SMC-TourService/pkg/metrics"
	"github.com/m04kA/SMC-TourService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TourService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// База может подниматься дольше сервиса, ждём с экспоненциальной задержкой
	if err := waitForDatabase(db, time.Duration(cfg.Database.ConnectTimeout)*time.Second, log); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка собирает метрики запросов, если они включены
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	// Redis для сессий
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	imageHost, err := cloudinaryClient.NewClient(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize cloudinary client: %v", err)
	}
	emailSender := sendgridClient.NewClient(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromName,
		cfg.SendGrid.FromEmail,
		time.Duration(cfg.SendGrid.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Cloudinary cloud=%s, SendGrid from=%s timeout=%ds)",
		cfg.Cloudinary.CloudName, cfg.SendGrid.FromEmail, cfg.SendGrid.Timeout)

	// Инициализируем репозитории
	quotationRepository := quotationRepo.NewRepository(wrappedDB)
	invoiceRepository := invoiceRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	galleryRepository := galleryRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	sessions := sessionStore.NewStore(redisClient, cfg.Session.KeyPrefix)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	quotationSvc := quotationsService.NewService(quotationRepository, txMgr, log)
	sessionSvc := sessionsService.NewService(
		userRepository,
		sessions,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		log,
	)
	gallerySvc := galleryService.NewService(galleryRepository, log)

	// Инициализируем use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		cfg.Pricing.DefaultDepositPercentage,
		cfg.Pricing.DefaultCurrency,
		log,
	)
	airportPickupUseCase := airportPickupUC.NewUseCase(
		catalogRepository,
		cfg.Pricing.DefaultDepositPercentage,
		log,
	)
	createQuotationUseCase := createQuotationUC.NewUseCase(
		quotationRepository,
		catalogRepository,
		createQuotationUC.Settings{
			DefaultDepositPercentage: cfg.Pricing.DefaultDepositPercentage,
			ValidityDays:             cfg.Pricing.QuotationValidityDays,
			DefaultCurrency:          cfg.Pricing.DefaultCurrency,
		},
		log,
	)
	sendQuotationUseCase := sendQuotationUC.NewUseCase(
		quotationRepository,
		invoiceRepository,
		emailSender,
		cfg.Pricing.InvoiceDueDays,
		log,
	)
	galleryBulkUploadUseCase := galleryBulkUploadUC.NewUseCase(galleryRepository, imageHost, metricsCollector, log)
	galleryBulkDeleteUseCase := galleryBulkDeleteUC.NewUseCase(galleryRepository, imageHost, metricsCollector, log)

	// Инициализируем handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	airportPickup := airportPickupHandler.NewHandler(airportPickupUseCase, log)
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	createQuotation := createQuotationHandler.NewHandler(createQuotationUseCase, log)
	getQuotation := getQuotationHandler.NewHandler(quotationSvc, log)
	listQuotations := listQuotationsHandler.NewHandler(quotationSvc, log)
	updateQuotationStatus := updateQuotationStatusHandler.NewHandler(quotationSvc, log)
	sendQuotation := sendQuotationHandler.NewHandler(sendQuotationUseCase, log)
	listGallery := listGalleryHandler.NewHandler(gallerySvc, log)
	galleryBulkUpload := galleryBulkUploadHandler.NewHandler(galleryBulkUploadUseCase, log)
	galleryBulkDelete := galleryBulkDeleteHandler.NewHandler(galleryBulkDeleteUseCase, log)
	uploadImage := uploadImageHandler.NewHandler(imageHost, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	limiter, err := middleware.NewRateLimiter(
		cfg.RateLimit.RPS,
		cfg.RateLimit.Burst,
		cfg.RateLimit.TrustedProxies,
		time.Duration(cfg.RateLimit.IdleTTL)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to init rate limiter: %v", err)
	}
	stopLimiterCh := make(chan struct{})
	limiter.StartCleanup(time.Minute, stopLimiterCh)
	public := api.PathPrefix("").Subrouter()
	public.Use(limiter.Middleware())

	// Расчёт стоимости для формы бронирования
	public.HandleFunc("/pricing/quote", calculatePrice.Handle).Methods(http.MethodPost)

	// Вход в back-office
	public.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Галерея для сайта
	public.HandleFunc("/gallery", listGallery.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc, log))

	// Выход
	protected.HandleFunc("/sessions", deleteSession.Handle).Methods(http.MethodDelete)

	// Трансфер из аэропорта (админский калькулятор)
	protected.HandleFunc("/pricing/airport-pickup", airportPickup.Handle).Methods(http.MethodPost)

	// --- Котировки ---
	protected.HandleFunc("/quotations", createQuotation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/quotations", listQuotations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/quotations/{quotationId}", getQuotation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/quotations/{quotationId}/status", updateQuotationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/quotations/{quotationId}/send", sendQuotation.Handle).Methods(http.MethodPost)

	// --- Галерея (только администратор) ---
	galleryAdmin := protected.PathPrefix("/gallery").Subrouter()
	galleryAdmin.Use(middleware.RequireRole(domain.RoleAdmin))
	galleryAdmin.Use(middleware.ExtendDeadlines(time.Duration(cfg.Server.BulkTimeout)*time.Second, log))
	galleryAdmin.HandleFunc("/bulk-upload", galleryBulkUpload.Handle).Methods(http.MethodPost)
	galleryAdmin.HandleFunc("/bulk-delete", galleryBulkDelete.Handle).Methods(http.MethodPost)

	// --- Загрузка одного изображения (только администратор) ---
	uploads := protected.PathPrefix("/uploads").Subrouter()
	uploads.Use(middleware.RequireRole(domain.RoleAdmin))
	uploads.HandleFunc("", uploadImage.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopLimiterCh)

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// waitForDatabase пингует базу, пока она не ответит или не выйдет maxElapsed
func waitForDatabase(db *sql.DB, maxElapsed time.Duration, log *logger.Logger) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed
	policy.MaxInterval = 5 * time.Second

	return backoff.RetryNotify(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return db.PingContext(ctx)
		},
		policy,
		func(err error, next time.Duration) {
			log.Warn("Database is not ready: %v, retrying in %s", err, next)
		},
	)
}
