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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	blockDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/block_date"
	checkDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_date"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_calendar"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	unblockDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/unblock_date"
	updateAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	availabilityCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/availability"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/businessapi"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone %s: %v", cfg.Booking.Timezone, err)
	}
	timeProvider := &availabilityService.RealTimeProvider{Location: location}

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

	// Без метрик обёртка просто проксирует запросы в *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)
	repository := availabilityRepo.NewRepository(wrappedDB)

	// Кэш конфигурации (опционально)
	var (
		redisClient *redis.Client
		configCache availabilityService.ConfigCache
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		configCache = availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)
		log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	} else {
		log.Warn("Redis disabled, availability config is read from database on every request")
	}

	// metricsCollector == nil допустим: ObserveCache ничего не делает
	var cacheMetrics availabilityService.CacheMetrics
	if metricsCollector != nil {
		cacheMetrics = metricsCollector
	}

	// Клиент внешнего Business API (услуги и слоты)
	businessClient := businessapi.NewClient(
		cfg.BusinessAPI.URL,
		time.Duration(cfg.BusinessAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Business API client initialized (url=%s, timeout=%ds)", cfg.BusinessAPI.URL, cfg.BusinessAPI.Timeout)

	// Инициализируем сервисы и use cases
	availabilitySvc := availabilityService.NewService(
		repository,
		configCache,
		txMgr,
		timeProvider,
		cacheMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilitySvc,
		businessClient,
		timeProvider,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		getAvailableSlotsUseCase,
		businessClient,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(availabilitySvc, log)
	checkDate := checkDateHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	blockDate := blockDateHandler.NewHandler(availabilitySvc, log)
	unblockDate := unblockDateHandler.NewHandler(availabilitySvc, log)

	healthChecks := map[string]health.Check{"database": db.PingContext}
	if redisClient != nil {
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthHandler := health.NewHandler(healthChecks)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (виджет бронирования)
	// ============================================================

	// Календарь месяца с доступностью дат
	api.HandleFunc("/businesses/{businessId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Можно ли забронировать конкретную дату
	api.HandleFunc("/businesses/{businessId}/dates/{date}/eligibility", checkDate.Handle).Methods(http.MethodGet)

	// Слоты на дату
	api.HandleFunc("/businesses/{businessId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование с повторной проверкой даты и слота
	api.HandleFunc("/businesses/{businessId}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Business-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Tenant)

	// --- Недельное расписание ---
	admin.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability", updateAvailability.Handle).Methods(http.MethodPut)

	// --- Заблокированные даты ---
	admin.HandleFunc("/blocked-dates", blockDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{date}", unblockDate.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
