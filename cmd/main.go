package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/check_availability"
	confirmPaymentHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/get_available_slots"
	getBaysStatusHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/get_bays_status"
	getBookingHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/get_day_bookings"
	getVenueInfoHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/get_venue_info"
	initializePaymentHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/initialize_payment"
	paymentWebhookHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/payment_webhook"
	validateCouponHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/validate_coupon"
	verifyPaymentHandler "github.com/m04kA/Fairway-BookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/Fairway-BookingService/internal/api/middleware"
	"github.com/m04kA/Fairway-BookingService/internal/config"
	slotsCache "github.com/m04kA/Fairway-BookingService/internal/infra/cache/slots"
	bookingRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/booking"
	couponRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/coupon"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/automation"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/broker"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/yoco"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
	bookingsService "github.com/m04kA/Fairway-BookingService/internal/service/bookings"
	couponsService "github.com/m04kA/Fairway-BookingService/internal/service/coupons"
	checkAvailabilityUC "github.com/m04kA/Fairway-BookingService/internal/usecase/check_availability"
	confirmPaymentUC "github.com/m04kA/Fairway-BookingService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/Fairway-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/Fairway-BookingService/internal/usecase/get_available_slots"
	getBaysStatusUC "github.com/m04kA/Fairway-BookingService/internal/usecase/get_bays_status"
	initializePaymentUC "github.com/m04kA/Fairway-BookingService/internal/usecase/initialize_payment"
	verifyPaymentUC "github.com/m04kA/Fairway-BookingService/internal/usecase/verify_payment"
	"github.com/m04kA/Fairway-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Fairway-BookingService/pkg/logger"
	"github.com/m04kA/Fairway-BookingService/pkg/metrics"
	"github.com/m04kA/Fairway-BookingService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting Fairway-BookingService...")
	log.Info("Configuration loaded from %s", *configPath)

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

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка собирает метрики запросов; без метрик работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	couponRepository := couponRepo.NewRepository(wrappedDB)

	// Кэш занятых слотов (опционально)
	var cache admission.SlotsCache
	if cfg.Redis.Enabled {
		redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := slotsCache.NewRedisClient(redisCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		redisCancel()
		if err != nil {
			log.Warn("Redis unavailable, slots cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			cache = slotsCache.NewCache(redisClient, cfg.Redis.SlotsTTL)
			log.Info("Slots cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.SlotsTTL)
		}
	}

	// Получатели событий бронирований
	notifier := automation.NewFanout(metricsCollector, log)
	if cfg.Automation.WebhookURL != "" {
		notifier.Add("webhook", automation.NewWebhookClient(
			cfg.Automation.WebhookURL,
			cfg.Automation.Secret,
			time.Duration(cfg.Automation.Timeout)*time.Second,
			log,
		))
	}
	if cfg.Broker.Enabled {
		publisher, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Queue, log)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		defer publisher.Close()
		notifier.Add("broker", publisher)
	}
	log.Info("Automation notifiers initialized: count=%d", notifier.Len())

	// Платёжный шлюз
	gateway := yoco.NewClient(
		cfg.Payment.GatewayURL,
		cfg.Payment.SecretKey,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	verifier, err := yoco.NewWebhookVerifier(cfg.Payment.WebhookSecret)
	if err != nil {
		log.Fatal("Failed to initialize webhook verifier (payment.webhook_secret is required): %v", err)
	}

	// Движок допуска
	engine := admission.NewEngine(
		bookingRepository,
		txMgr,
		cache,
		metricsCollector,
		nil,
		log,
		admission.Settings{
			Location:               cfg.Venue.Location(),
			PoolSize:               cfg.Venue.Bays,
			GhostTimeout:           cfg.Booking.GhostTimeout,
			SlotGranularityMinutes: cfg.Venue.SlotGranularityMinutes,
			Schedule:               cfg.Venue.Schedule(),
		},
	)
	log.Info("Admission engine initialized (bays=%d, granularity=%dm, ghost_timeout=%s)",
		cfg.Venue.Bays, cfg.Venue.SlotGranularityMinutes, cfg.Booking.GhostTimeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, engine, log)
	couponSvc := couponsService.NewService(couponRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(engine, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(engine, log)
	createBookingUseCase := createBookingUC.NewUseCase(engine, log)
	getBaysStatusUseCase := getBaysStatusUC.NewUseCase(engine, log)
	initializePaymentUseCase := initializePaymentUC.NewUseCase(
		engine,
		couponSvc,
		gateway,
		bookingRepository,
		notifier,
		initializePaymentUC.Settings{
			Currency:        cfg.Payment.Currency,
			SiteURL:         cfg.Payment.SiteURL,
			DepositPercent:  cfg.Payment.DepositPercent,
			AdminBypassCode: cfg.Payment.AdminBypassCode,
		},
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		txMgr,
		engine,
		verifier,
		notifier,
		confirmPaymentUC.Settings{
			DepositPercent: cfg.Payment.DepositPercent,
			GhostTimeout:   cfg.Booking.GhostTimeout,
		},
		log,
	)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(bookingRepository, cfg.Payment.SiteURL, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getVenueInfo := getVenueInfoHandler.NewHandler(getVenueInfoHandler.FromConfig(cfg), log)
	initializePayment := initializePaymentHandler.NewHandler(initializePaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)
	validateCoupon := validateCouponHandler.NewHandler(couponSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getBaysStatus := getBaysStatusHandler.NewHandler(getBaysStatusUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (мастер бронирования и платёжный шлюз)
	// ============================================================

	// Сетка слотов дня
	api.HandleFunc("/bookings/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка свободных боксов на окно
	api.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Параметры площадки
	api.HandleFunc("/venue", getVenueInfo.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	api.HandleFunc("/payments/initialize", initializePayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/verify", verifyPayment.Handle).Methods(http.MethodGet)

	// Проверка купона
	api.HandleFunc("/coupons/validate", validateCoupon.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Бронирования ---
	// Walk-in бронирование у стойки
	admin.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования за день
	admin.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	admin.HandleFunc("/bookings/{bookingId:[0-9a-fA-F-]{36}}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	admin.HandleFunc("/bookings/{bookingId:[0-9a-fA-F-]{36}}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Ручное подтверждение оплаты
	admin.HandleFunc("/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// Табло боксов
	admin.HandleFunc("/bays/status", getBaysStatus.Handle).Methods(http.MethodGet)

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
