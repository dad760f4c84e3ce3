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

	checkAvailabilityHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/create_booking"
	createEquipmentHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/create_equipment"
	createMaintenanceHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/create_maintenance"
	getEquipmentHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/get_equipment"
	getUserBookingsHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/list_bookings"
	listConfirmedBookingsHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/list_confirmed_bookings"
	listEquipmentHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/list_equipment"
	listMaintenanceHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/list_maintenance"
	updateBookingStatusHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/update_booking_status"
	updateMaintenanceHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/update_maintenance"
	updateMaintenanceStatusHandler "github.com/fabworks/FabLab-BookingService/internal/api/handlers/update_maintenance_status"
	"github.com/fabworks/FabLab-BookingService/internal/api/middleware"
	"github.com/fabworks/FabLab-BookingService/internal/config"
	bookingRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/booking"
	equipmentRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/equipment"
	maintenanceRepo "github.com/fabworks/FabLab-BookingService/internal/infra/storage/maintenance"
	"github.com/fabworks/FabLab-BookingService/internal/schedule"
	"github.com/fabworks/FabLab-BookingService/internal/scheduler"
	bookingsService "github.com/fabworks/FabLab-BookingService/internal/service/bookings"
	equipmentService "github.com/fabworks/FabLab-BookingService/internal/service/equipment"
	maintenanceService "github.com/fabworks/FabLab-BookingService/internal/service/maintenance"
	checkAvailabilityUC "github.com/fabworks/FabLab-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/fabworks/FabLab-BookingService/internal/usecase/create_booking"
	createMaintenanceUC "github.com/fabworks/FabLab-BookingService/internal/usecase/create_maintenance"
	"github.com/fabworks/FabLab-BookingService/pkg/logger"
	"github.com/fabworks/FabLab-BookingService/pkg/metrics"
	"github.com/fabworks/FabLab-BookingService/pkg/txmanager"
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

	log.Info("Starting FabLab-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	equipmentRepository := equipmentRepo.NewRepository(db)
	maintenanceRepository := maintenanceRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Поиск альтернативных слотов
	searcher := schedule.NewSearcher(
		bookingRepository,
		cfg.Suggestions.StepMinutes,
		cfg.Suggestions.MinSuggestions,
		cfg.Suggestions.MaxDays,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	equipmentSvc := equipmentService.NewService(equipmentRepository, log)
	maintenanceSvc := maintenanceService.NewService(
		maintenanceRepository,
		equipmentRepository,
		&maintenanceService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, searcher, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		equipmentRepository,
		searcher,
		txMgr,
		log,
	)
	createMaintenanceUseCase := createMaintenanceUC.NewUseCase(
		maintenanceRepository,
		bookingRepository,
		equipmentRepository,
		log,
	)

	// Фоновый планировщик обслуживания
	var schedulerMetrics scheduler.Metrics
	if cfg.Metrics.Enabled {
		schedulerMetrics = metricsCollector
	}
	maintenanceScheduler := scheduler.New(
		maintenanceRepository,
		equipmentRepository,
		time.Duration(cfg.Scheduler.IntervalSeconds)*time.Second,
		schedulerMetrics,
		log,
	)

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	go maintenanceScheduler.Run(schedulerCtx)
	log.Info("Maintenance scheduler started (interval=%ds)", cfg.Scheduler.IntervalSeconds)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listConfirmedBookings := listConfirmedBookingsHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	createMaintenance := createMaintenanceHandler.NewHandler(createMaintenanceUseCase, log)
	listMaintenance := listMaintenanceHandler.NewHandler(maintenanceSvc, log)
	updateMaintenanceStatus := updateMaintenanceStatusHandler.NewHandler(maintenanceSvc, log)
	updateMaintenance := updateMaintenanceHandler.NewHandler(maintenanceSvc, log)
	createEquipment := createEquipmentHandler.NewHandler(equipmentSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(equipmentSvc, log)
	getEquipment := getEquipmentHandler.NewHandler(equipmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог оборудования
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}", getEquipment.Handle).Methods(http.MethodGet)

	// Публичное расписание занятости
	api.HandleFunc("/bookings/confirmed", listConfirmedBookings.Handle).Methods(http.MethodGet)

	// История обслуживания оборудования
	api.HandleFunc("/maintenance/{equipmentId:[0-9]+}", listMaintenance.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Проверка доступности слота с подбором альтернатив
	protected.HandleFunc("/bookings/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Создание бронирования (pending до подтверждения администратором)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(log), middleware.RequireAdmin(log))

	// Все бронирования, опциональный фильтр по статусу
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Модерация бронирований
	admin.HandleFunc("/bookings/{id:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Управление обслуживанием
	admin.HandleFunc("/maintenance", createMaintenance.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/maintenance/{id:[0-9]+}/status", updateMaintenanceStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/maintenance/{id:[0-9]+}", updateMaintenance.Handle).Methods(http.MethodPatch)

	// Управление каталогом оборудования
	admin.HandleFunc("/equipment", createEquipment.Handle).Methods(http.MethodPost)

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

	// Останавливаем планировщик
	stopScheduler()

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
