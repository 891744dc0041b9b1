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

	bookSlotHandler "github.com/massage-bot/schedule-service/internal/api/handlers/book_slot"
	createManualBookingHandler "github.com/massage-bot/schedule-service/internal/api/handlers/create_manual_booking"
	createSlotHandler "github.com/massage-bot/schedule-service/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/massage-bot/schedule-service/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/massage-bot/schedule-service/internal/api/handlers/generate_slots"
	getAdminSlotsHandler "github.com/massage-bot/schedule-service/internal/api/handlers/get_admin_slots"
	getBalanceHandler "github.com/massage-bot/schedule-service/internal/api/handlers/get_balance"
	getBookingsHandler "github.com/massage-bot/schedule-service/internal/api/handlers/get_bookings"
	getSlotsHandler "github.com/massage-bot/schedule-service/internal/api/handlers/get_slots"
	syncCalendarHandler "github.com/massage-bot/schedule-service/internal/api/handlers/sync_calendar"
	toggleSlotHandler "github.com/massage-bot/schedule-service/internal/api/handlers/toggle_slot"
	topUpBalanceHandler "github.com/massage-bot/schedule-service/internal/api/handlers/top_up_balance"
	updateBookingInfoHandler "github.com/massage-bot/schedule-service/internal/api/handlers/update_booking_info"
	updateBookingStatusHandler "github.com/massage-bot/schedule-service/internal/api/handlers/update_booking_status"
	"github.com/massage-bot/schedule-service/internal/api/middleware"
	"github.com/massage-bot/schedule-service/internal/config"
	accountRepo "github.com/massage-bot/schedule-service/internal/infra/storage/account"
	bookingRepo "github.com/massage-bot/schedule-service/internal/infra/storage/booking"
	slotRepo "github.com/massage-bot/schedule-service/internal/infra/storage/slot"
	gcalClient "github.com/massage-bot/schedule-service/internal/integrations/gcal"
	balanceService "github.com/massage-bot/schedule-service/internal/service/balance"
	bookingsService "github.com/massage-bot/schedule-service/internal/service/bookings"
	slotsService "github.com/massage-bot/schedule-service/internal/service/slots"
	bookSlotUC "github.com/massage-bot/schedule-service/internal/usecase/book_slot"
	cancelBookingUC "github.com/massage-bot/schedule-service/internal/usecase/cancel_booking"
	generateSlotsUC "github.com/massage-bot/schedule-service/internal/usecase/generate_slots"
	manualBookingUC "github.com/massage-bot/schedule-service/internal/usecase/manual_booking"
	syncCalendarUC "github.com/massage-bot/schedule-service/internal/usecase/sync_calendar"
	toggleSlotUC "github.com/massage-bot/schedule-service/internal/usecase/toggle_slot"
	"github.com/massage-bot/schedule-service/pkg/dbmetrics"
	"github.com/massage-bot/schedule-service/pkg/logger"
	"github.com/massage-bot/schedule-service/pkg/metrics"
	"github.com/massage-bot/schedule-service/pkg/simpletxmanager"
	"github.com/massage-bot/schedule-service/pkg/txmanager"
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

	log.Info("Starting schedule-service...")
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

	// Клиент внешнего календаря
	calendarClient := gcalClient.NewClient(
		cfg.Calendar.URL,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar client initialized (url=%s timeout=%ds)", cfg.Calendar.URL, cfg.Calendar.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		accountRepository *accountRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		accountRepository = accountRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, metricsCollector)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		accountRepository = accountRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, txMgr, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	balanceSvc := balanceService.NewService(accountRepository, log)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(
		slotRepository,
		bookingRepository,
		accountRepository,
		txMgr,
		cfg.Booking.SlotPriceCoins,
		log,
	)
	manualBookingUseCase := manualBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		log,
	)
	toggleSlotUseCase := toggleSlotUC.NewUseCase(
		slotRepository,
		bookingRepository,
		accountRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		accountRepository,
		txMgr,
		log,
	)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(slotRepository, log)
	syncCalendarUseCase := syncCalendarUC.NewUseCase(calendarClient, slotRepository, log)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(slotsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getBalance := getBalanceHandler.NewHandler(balanceSvc, log)
	getAdminSlots := getAdminSlotsHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	toggleSlot := toggleSlotHandler.NewHandler(toggleSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	createManualBooking := createManualBookingHandler.NewHandler(manualBookingUseCase, log)
	updateBookingInfo := updateBookingInfoHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, cancelBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	syncCalendar := syncCalendarHandler.NewHandler(syncCalendarUseCase, log)
	topUpBalance := topUpBalanceHandler.NewHandler(balanceSvc, log)

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

	// API prefix: все ручки требуют аутентифицированного пользователя
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth)

	// --- Клиентские ручки ---
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book", bookSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/balance", getBalance.Handle).Methods(http.MethodPost)

	// --- Админские ручки ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(cfg.Admin.UserIDs))

	admin.HandleFunc("/slots", getAdminSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/bulk", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", toggleSlot.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/manual", createManualBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/manual-info", updateBookingInfo.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/balance", topUpBalance.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/sync", syncCalendar.Handle).Methods(http.MethodPost)

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
