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

	addClosureHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/add_closure"
	cancelReservationHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/get_availability"
	getEstimateHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/get_estimate"
	getModelsHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/get_models"
	getOptionsHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/get_options"
	getRepairsHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/get_repairs"
	getReservationHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/get_reservation"
	listClosuresHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/list_closures"
	listReservationsHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/list_reservations"
	removeClosureHandler "github.com/dmkaz/RSC-BookingService/internal/api/handlers/remove_closure"
	"github.com/dmkaz/RSC-BookingService/internal/api/middleware"
	"github.com/dmkaz/RSC-BookingService/internal/config"
	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/internal/infra/pricelist"
	"github.com/dmkaz/RSC-BookingService/internal/infra/storage"
	closureRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/closure"
	reservationRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/reservation"
	closuresService "github.com/dmkaz/RSC-BookingService/internal/service/closures"
	estimatesService "github.com/dmkaz/RSC-BookingService/internal/service/estimates"
	reservationsService "github.com/dmkaz/RSC-BookingService/internal/service/reservations"
	createReservationUC "github.com/dmkaz/RSC-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/dmkaz/RSC-BookingService/internal/usecase/get_availability"
	"github.com/dmkaz/RSC-BookingService/pkg/dbmetrics"
	"github.com/dmkaz/RSC-BookingService/pkg/logger"
	"github.com/dmkaz/RSC-BookingService/pkg/metrics"
	"github.com/dmkaz/RSC-BookingService/pkg/txmanager"
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

	log.Info("Starting RSC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог слотов фиксируется на старте из конфигурации
	catalog, err := domain.NewSlotCatalog(cfg.Booking.Slots)
	if err != nil {
		log.Fatal("Invalid slot catalog: %v", err)
	}
	log.Info("Slot catalog loaded (%d slots)", catalog.Len())

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

	// Оборачиваем пул: с метриками собирается статистика,
	// без метрик обёртка прозрачна
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Применяем миграции схемы
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := storage.Migrate(migrateCtx, wrappedDB); err != nil {
		cancelMigrate()
		log.Fatal("Failed to run migrations: %v", err)
	}
	cancelMigrate()
	log.Info("Database schema is up to date")

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	closureRepository := closureRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Прайс-лист читается с диска на каждый запрос
	pricelistReader := pricelist.NewReader(cfg.Pricelist.PricesFile, cfg.Pricelist.OptionsFile)
	log.Info("Pricelist files: prices=%s, options=%s", cfg.Pricelist.PricesFile, cfg.Pricelist.OptionsFile)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	closuresSvc := closuresService.NewService(closureRepository, catalog, log)
	estimatesSvc := estimatesService.NewService(pricelistReader, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		closureRepository,
		catalog,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		closureRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	addClosure := addClosureHandler.NewHandler(closuresSvc, log)
	removeClosure := removeClosureHandler.NewHandler(closuresSvc, log)
	listClosures := listClosuresHandler.NewHandler(closuresSvc, log)
	getModels := getModelsHandler.NewHandler(estimatesSvc, log)
	getRepairs := getRepairsHandler.NewHandler(estimatesSvc, log)
	getOptions := getOptionsHandler.NewHandler(estimatesSvc, log)
	getEstimate := getEstimateHandler.NewHandler(estimatesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность слотов ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Закрытия (выходные и заблокированные слоты) ---
	api.HandleFunc("/closures", addClosure.Handle).Methods(http.MethodPost)
	api.HandleFunc("/closures", listClosures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/closures", removeClosure.Handle).Methods(http.MethodDelete)

	// --- Прайс-лист и расчёт стоимости ---
	api.HandleFunc("/models", getModels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/repairs", getRepairs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/options", getOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/estimate", getEstimate.Handle).Methods(http.MethodGet)

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
