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

	bookTimeSlotHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/book_time_slot"
	createTimeSlotHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/create_time_slot"
	deleteTimeSlotHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/delete_time_slot"
	getAvailableSlotsHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/get_available_slots"
	getCalendarGridHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/get_calendar_grid"
	getPropertyTimeSlotsHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/get_property_time_slots"
	getRankingsHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/get_rankings"
	getTimeSlotHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/get_time_slot"
	updateTimeSlotHandler "github.com/m04kA/SMC-RealtyService/internal/api/handlers/update_time_slot"
	"github.com/m04kA/SMC-RealtyService/internal/api/middleware"
	"github.com/m04kA/SMC-RealtyService/internal/config"
	rankingsCache "github.com/m04kA/SMC-RealtyService/internal/infra/cache/rankings"
	profileRepo "github.com/m04kA/SMC-RealtyService/internal/infra/storage/profile"
	timeSlotRepo "github.com/m04kA/SMC-RealtyService/internal/infra/storage/timeslot"
	followerServiceClient "github.com/m04kA/SMC-RealtyService/internal/integrations/followerservice"
	timeSlotsService "github.com/m04kA/SMC-RealtyService/internal/service/timeslots"
	bookTimeSlotUC "github.com/m04kA/SMC-RealtyService/internal/usecase/book_time_slot"
	getAvailableSlotsUC "github.com/m04kA/SMC-RealtyService/internal/usecase/get_available_slots"
	getCalendarGridUC "github.com/m04kA/SMC-RealtyService/internal/usecase/get_calendar_grid"
	getRankingsUC "github.com/m04kA/SMC-RealtyService/internal/usecase/get_rankings"
	"github.com/m04kA/SMC-RealtyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RealtyService/pkg/idgen"
	"github.com/m04kA/SMC-RealtyService/pkg/logger"
	"github.com/m04kA/SMC-RealtyService/pkg/metrics"
	"github.com/m04kA/SMC-RealtyService/pkg/txmanager"
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

	log.Info("Starting SMC-RealtyService...")
	log.Info("Configuration loaded from config.toml (areas=%d)", len(cfg.Rankings.Areas))

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

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	followerClient := followerServiceClient.NewClient(
		cfg.FollowerService.URL,
		time.Duration(cfg.FollowerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FollowerService=%s timeout=%ds)",
		cfg.FollowerService.URL, cfg.FollowerService.Timeout)

	// Кэш рейтингов (если включен)
	var cache getRankingsUC.RankingsCache
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Рейтинг считается и без кэша, поэтому стартуем дальше
			log.Warn("Redis is unavailable at %s: %v", cfg.Cache.Addr, err)
		}
		cancelPing()

		cache = rankingsCache.NewCache(redisClient, time.Duration(cfg.Cache.RankingTTL)*time.Second)
		log.Info("Rankings cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.RankingTTL)
	}

	var rankingsMetrics getRankingsUC.MetricsRecorder
	if metricsCollector != nil {
		rankingsMetrics = metricsCollector
	}

	// Инициализируем репозитории
	timeSlotRepository := timeSlotRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	timeSlotSvc := timeSlotsService.NewService(
		timeSlotRepository,
		idgen.NewUUIDGenerator(),
		txMgr,
		log,
	)

	// Инициализируем use cases
	getCalendarGridUseCase := getCalendarGridUC.NewUseCase(timeSlotRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(timeSlotRepository, log)
	bookTimeSlotUseCase := bookTimeSlotUC.NewUseCase(timeSlotRepository, txMgr, log)
	getRankingsUseCase := getRankingsUC.NewUseCase(
		profileRepository,
		followerClient,
		cache,
		rankingsMetrics,
		cfg.Rankings.Areas,
		log,
	)

	// Инициализируем handlers
	getCalendarGrid := getCalendarGridHandler.NewHandler(getCalendarGridUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getRankings := getRankingsHandler.NewHandler(getRankingsUseCase, log)
	getPropertyTimeSlots := getPropertyTimeSlotsHandler.NewHandler(timeSlotSvc, log)
	getTimeSlot := getTimeSlotHandler.NewHandler(timeSlotSvc, log)
	createTimeSlot := createTimeSlotHandler.NewHandler(timeSlotSvc, log)
	updateTimeSlot := updateTimeSlotHandler.NewHandler(timeSlotSvc, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(timeSlotSvc, log)
	bookTimeSlot := bookTimeSlotHandler.NewHandler(bookTimeSlotUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарная сетка месяца для объекта
	api.HandleFunc("/properties/{propertyId}/calendar", getCalendarGrid.Handle).Methods(http.MethodGet)

	// Доступные слоты показа на дату
	api.HandleFunc("/properties/{propertyId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Все слоты объекта
	api.HandleFunc("/properties/{propertyId}/time-slots", getPropertyTimeSlots.Handle).Methods(http.MethodGet)

	// Слот по ID
	api.HandleFunc("/time-slots/{slotId}", getTimeSlot.Handle).Methods(http.MethodGet)

	// Рейтинг агентов
	api.HandleFunc("/rankings", getRankings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление слотами (для агентов) ---
	protected.HandleFunc("/properties/{propertyId}/time-slots", createTimeSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/time-slots/{slotId}", updateTimeSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/time-slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	// --- Запись на показ ---
	protected.HandleFunc("/time-slots/{slotId}/book", bookTimeSlot.Handle).Methods(http.MethodPost)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
