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

	addVehicleHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/add_vehicle"
	approveAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/approve_appointment"
	archiveAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/archive_appointment"
	bookAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/complete_appointment"
	deleteVehicleHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/delete_vehicle"
	getAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/get_appointment"
	getAppointmentProgressHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/get_appointment_progress"
	getProfileHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/get_profile"
	getUserAppointmentsHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/get_user_appointments"
	listAppointmentsHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/list_appointments"
	listVehiclesHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/list_vehicles"
	rejectAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/reject_appointment"
	rescheduleAppointmentHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/reschedule_appointment"
	setProgressStepHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/set_progress_step"
	updateProfileHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/update_profile"
	updateVehicleHandler "github.com/qb-auto/QB-AppointmentService/internal/api/handlers/update_vehicle"
	"github.com/qb-auto/QB-AppointmentService/internal/api/middleware"
	"github.com/qb-auto/QB-AppointmentService/internal/config"
	appointmentRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/appointment"
	customerRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/customer"
	vehicleRepo "github.com/qb-auto/QB-AppointmentService/internal/infra/storage/vehicle"
	appointmentsService "github.com/qb-auto/QB-AppointmentService/internal/service/appointments"
	customersService "github.com/qb-auto/QB-AppointmentService/internal/service/customers"
	vehiclesService "github.com/qb-auto/QB-AppointmentService/internal/service/vehicles"
	bookAppointmentUC "github.com/qb-auto/QB-AppointmentService/internal/usecase/book_appointment"
	rescheduleAppointmentUC "github.com/qb-auto/QB-AppointmentService/internal/usecase/reschedule_appointment"
	"github.com/qb-auto/QB-AppointmentService/pkg/dbmetrics"
	"github.com/qb-auto/QB-AppointmentService/pkg/logger"
	"github.com/qb-auto/QB-AppointmentService/pkg/metrics"
	"github.com/qb-auto/QB-AppointmentService/pkg/simpletxmanager"
	"github.com/qb-auto/QB-AppointmentService/pkg/txmanager"
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

	log.Info("Starting QB-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		customerRepository    *customerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, appointmentRepository, log)
	customerSvc := customersService.NewService(customerRepository, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		vehicleRepository,
		customerRepository,
		txMgr,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointmentProgress := getAppointmentProgressHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	approveAppointment := approveAppointmentHandler.NewHandler(appointmentSvc, log)
	rejectAppointment := rejectAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	setProgressStep := setProgressStepHandler.NewHandler(appointmentSvc, log)
	archiveAppointment := archiveAppointmentHandler.NewHandler(appointmentSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	addVehicle := addVehicleHandler.NewHandler(vehicleSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)
	getProfile := getProfileHandler.NewHandler(customerSvc, log)
	updateProfile := updateProfileHandler.NewHandler(customerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// CUSTOMER ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на обслуживание ---
	// Создание записи
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Трекер прогресса обслуживания
	protected.HandleFunc("/appointments/{appointmentId}/progress", getAppointmentProgress.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/me/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Гараж клиента ---
	protected.HandleFunc("/me/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/vehicles", addVehicle.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/me/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/me/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// --- Профиль клиента ---
	protected.HandleFunc("/me/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/profile", updateProfile.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth)

	// Список записей с фильтрацией
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Управление жизненным циклом записи
	admin.HandleFunc("/appointments/{appointmentId}/approve", approveAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/reject", rejectAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/progress", setProgressStep.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/archive", archiveAppointment.Handle).Methods(http.MethodPatch)

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
