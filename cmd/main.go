package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	authHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/auth"
	billHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/bill"
	carsHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/cars"
	packagesHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/packages"
	paymentsHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/payments"
	reportsHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/reports"
	servicesHandler "github.com/m04kA/SMC-CarWashService/internal/api/handlers/services"
	"github.com/m04kA/SMC-CarWashService/internal/api/middleware"
	"github.com/m04kA/SMC-CarWashService/internal/config"
	carRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/car"
	packageRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/packages"
	paymentRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/payment"
	reportRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/report"
	serviceRecordRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/servicerecord"
	sessionRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-CarWashService/internal/service/auth"
	carsService "github.com/m04kA/SMC-CarWashService/internal/service/cars"
	packagesService "github.com/m04kA/SMC-CarWashService/internal/service/packages"
	paymentsService "github.com/m04kA/SMC-CarWashService/internal/service/payments"
	reportsService "github.com/m04kA/SMC-CarWashService/internal/service/reports"
	servicerecordsService "github.com/m04kA/SMC-CarWashService/internal/service/servicerecords"
	createPaymentUC "github.com/m04kA/SMC-CarWashService/internal/usecase/create_payment"
	createServiceUC "github.com/m04kA/SMC-CarWashService/internal/usecase/create_service"
	"github.com/m04kA/SMC-CarWashService/migrations"
	"github.com/m04kA/SMC-CarWashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarWashService/pkg/logger"
	"github.com/m04kA/SMC-CarWashService/pkg/metrics"
	"github.com/m04kA/SMC-CarWashService/pkg/txmanager"
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

	log.Info("Starting SMC-CarWashService...")
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
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции схемы
	if cfg.Database.MigrateOnStart {
		if err := runMigrations(cfg.Database.URL()); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Оборачиваем пул для инструментирования запросов
	// При выключенных метриках обёртка прозрачна
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	sessionRepository := sessionRepo.NewRepository(wrappedDB)
	carRepository := carRepo.NewRepository(wrappedDB)
	packageRepository := packageRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRecordRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)
	reportRepository := reportRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	authSvc := authService.NewService(userRepository, sessionRepository, sessionTTL, log)
	carsSvc := carsService.NewService(carRepository, serviceRepository, log)
	packagesSvc := packagesService.NewService(packageRepository, serviceRepository, log)
	servicesSvc := servicerecordsService.NewService(serviceRepository, paymentRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, log)
	reportsSvc := reportsService.NewService(reportRepository, log)

	// Инициализируем use cases
	createServiceUseCase := createServiceUC.NewUseCase(serviceRepository, carRepository, packageRepository, txMgr, log)
	createPaymentUseCase := createPaymentUC.NewUseCase(paymentRepository, serviceRepository, txMgr, log)

	// Инициализируем handlers
	cookieCfg := authHandler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
	}
	auth := authHandler.NewHandler(authSvc, cookieCfg, log)
	cars := carsHandler.NewHandler(carsSvc, log)
	packages := packagesHandler.NewHandler(packagesSvc, log)
	services := servicesHandler.NewHandler(servicesSvc, createServiceUseCase, log)
	payments := paymentsHandler.NewHandler(paymentsSvc, createPaymentUseCase, log)
	bill := billHandler.NewHandler(reportsSvc, log)
	reports := reportsHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.NewMetrics(metricsCollector).Middleware)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/status", auth.Status).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют сессионную cookie)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(authSvc, cfg.Session.CookieName, log).Middleware)

	// --- Автомобили ---
	protected.HandleFunc("/cars", cars.List).Methods(http.MethodGet)
	protected.HandleFunc("/cars", cars.Create).Methods(http.MethodPost)
	protected.HandleFunc("/cars/{plateNumber}", cars.Get).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{plateNumber}", cars.Update).Methods(http.MethodPut)
	protected.HandleFunc("/cars/{plateNumber}", cars.Delete).Methods(http.MethodDelete)

	// --- Пакеты услуг ---
	protected.HandleFunc("/packages", packages.List).Methods(http.MethodGet)
	protected.HandleFunc("/packages", packages.Create).Methods(http.MethodPost)
	protected.HandleFunc("/packages/{id}", packages.Get).Methods(http.MethodGet)
	protected.HandleFunc("/packages/{id}", packages.Update).Methods(http.MethodPut)
	protected.HandleFunc("/packages/{id}", packages.Delete).Methods(http.MethodDelete)

	// --- Услуги ---
	protected.HandleFunc("/services", services.List).Methods(http.MethodGet)
	protected.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}", services.Get).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", services.Update).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}", services.Delete).Methods(http.MethodDelete)

	// --- Платежи ---
	protected.HandleFunc("/payments", payments.List).Methods(http.MethodGet)
	protected.HandleFunc("/payments", payments.Create).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}", payments.Get).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id}", payments.Update).Methods(http.MethodPut)
	protected.HandleFunc("/payments/{id}", payments.Delete).Methods(http.MethodDelete)

	// --- Квитанции и отчеты ---
	protected.HandleFunc("/bill/{paymentId}", bill.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/dashboard", reports.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/reports/daily/{date}", reports.Daily).Methods(http.MethodGet)

	// CORS для фронтенда с передачей cookie
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

// runMigrations применяет встроенные миграции схемы к базе данных
func runMigrations(databaseURL string) error {
	src, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
