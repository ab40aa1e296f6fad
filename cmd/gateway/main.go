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

	"github.com/alecthomas/kong"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	createSeriesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_series"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getEligibleDatesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_eligible_dates"
	getSubmissionHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_submission"
	getWorkingDaysHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_working_days"
	previewSeriesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/preview_series"
	replaceWorkingDaysHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/replace_working_days"
	retrySeriesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/retry_series"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	submissionRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/submission"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	settingsService "github.com/m04kA/SMC-BarberBooking/internal/service/settings"
	submissionsService "github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
	createSeriesUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_series"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	getEligibleDatesUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
	previewSeriesUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
	retrySeriesUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/retry_series"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

var CLI struct {
	Config string `help:"Path to config file." type:"path" default:"config.toml" env:"BOOKING_CONFIG"`
}

func main() {
	kong.Parse(&CLI, kong.Name("gateway"), kong.Description("Barber shop booking gateway"))
	configPath := CLI.Config

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-BarberBooking gateway...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал отправок серий)
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

	// Без метрик обертка просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)

	// Инициализируем клиент сервиса расписания
	schedulingClient := scheduling.NewClient(
		cfg.Scheduling.URL,
		time.Duration(cfg.Scheduling.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Scheduling client initialized (url=%s, timeout=%ds)", cfg.Scheduling.URL, cfg.Scheduling.Timeout)

	// Репозитории и сервисы
	submissionRepository := submissionRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	submitLimiter := rate.NewLimiter(rate.Limit(cfg.Booking.SubmitRatePerSecond), cfg.Booking.SubmitBurst)

	submissionsSvc := submissionsService.NewService(
		submissionRepository,
		schedulingClient,
		txMgr,
		submitLimiter,
		metricsCollector,
		log,
	)
	settingsSvc := settingsService.NewService(schedulingClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(schedulingClient, location, log)
	getEligibleDatesUseCase := getEligibleDatesUC.NewUseCase(
		schedulingClient,
		location,
		cfg.Booking.HorizonDays,
		cfg.Booking.EligibleDatesLimit,
		log,
	)
	previewSeriesUseCase := previewSeriesUC.NewUseCase(
		schedulingClient,
		location,
		cfg.Booking.PreviewConcurrency,
		cfg.Booking.MaxOccurrences,
		log,
	)
	createSeriesUseCase := createSeriesUC.NewUseCase(submissionsSvc, location, cfg.Booking.MaxOccurrences, log)
	retrySeriesUseCase := retrySeriesUC.NewUseCase(submissionsSvc, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEligibleDates := getEligibleDatesHandler.NewHandler(getEligibleDatesUseCase, log)
	previewSeries := previewSeriesHandler.NewHandler(previewSeriesUseCase, log)
	createSeries := createSeriesHandler.NewHandler(createSeriesUseCase, log)
	getSubmission := getSubmissionHandler.NewHandler(submissionsSvc, log)
	retrySeries := retrySeriesHandler.NewHandler(retrySeriesUseCase, log)
	getWorkingDays := getWorkingDaysHandler.NewHandler(settingsSvc, log)
	replaceWorkingDays := replaceWorkingDaysHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют bearer токен сервиса расписания
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Календарь ---
	api.HandleFunc("/services/{serviceType}/available-dates", getEligibleDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceType}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Серии записей ---
	api.HandleFunc("/series/preview", previewSeries.Handle).Methods(http.MethodPost)
	api.HandleFunc("/series", createSeries.Handle).Methods(http.MethodPost)
	api.HandleFunc("/series/{submissionId}", getSubmission.Handle).Methods(http.MethodGet)
	api.HandleFunc("/series/{submissionId}/retry", retrySeries.Handle).Methods(http.MethodPost)

	// --- Настройки салона ---
	api.HandleFunc("/settings/working-days", getWorkingDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/working-days", replaceWorkingDays.Handle).Methods(http.MethodPut)

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
