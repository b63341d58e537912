package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingSessionHandler "github.com/m04kA/SMC-BookingGateway/internal/api/handlers/booking_session"
	cancelBookingHandler "github.com/m04kA/SMC-BookingGateway/internal/api/handlers/cancel_booking"
	createFeedbackHandler "github.com/m04kA/SMC-BookingGateway/internal/api/handlers/create_feedback"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BookingGateway/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BookingGateway/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-BookingGateway/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-BookingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-BookingGateway/internal/config"
	bookingAPIClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/bookingapi"
	discountAPIClient "github.com/m04kA/SMC-BookingGateway/internal/integrations/discountapi"
	bookingsService "github.com/m04kA/SMC-BookingGateway/internal/service/bookings"
	sessionService "github.com/m04kA/SMC-BookingGateway/internal/service/session"
	cancelBookingUC "github.com/m04kA/SMC-BookingGateway/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_booking"
	createFeedbackUC "github.com/m04kA/SMC-BookingGateway/internal/usecase/create_feedback"
	getAvailableSlotsUC "github.com/m04kA/SMC-BookingGateway/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BookingGateway/pkg/clientmetrics"
	"github.com/m04kA/SMC-BookingGateway/pkg/logger"
	"github.com/m04kA/SMC-BookingGateway/pkg/metrics"
	"github.com/m04kA/SMC-BookingGateway/pkg/poller"
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

	log.Info("Starting SMC-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	// При включенных метриках transport оборачивается сборщиком
	// исходящих метрик
	var bookingTransport, discountTransport http.RoundTripper
	if cfg.Metrics.Enabled {
		bookingTransport = clientmetrics.Wrap(nil, metricsCollector, "booking_api")
		discountTransport = clientmetrics.Wrap(nil, metricsCollector, "discount_api")
	}

	bookingClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		bookingTransport,
		log,
	)
	discountClient := discountAPIClient.NewClient(
		cfg.DiscountAPI.URL,
		time.Duration(cfg.DiscountAPI.Timeout)*time.Second,
		discountTransport,
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds, DiscountAPI=%s timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.DiscountAPI.URL, cfg.DiscountAPI.Timeout)

	// Гражданская таймзона планирования
	location := cfg.Location()
	log.Info("Scheduling timezone: %s, working window %s-%s",
		cfg.Booking.Timezone, cfg.Booking.OpenTime, cfg.Booking.CloseTime)

	// Инициализируем сервисы
	var sessionsGauge prometheus.Gauge
	if cfg.Metrics.Enabled {
		sessionsGauge = metricsCollector.ActiveSessions
	}
	sessionSvc := sessionService.NewService(bookingClient, discountClient, sessionsGauge, log)
	bookingsSvc := bookingsService.NewService(bookingClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingClient,
		location,
		cfg.OpenTimeMinutes(),
		cfg.CloseTimeMinutes(),
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(bookingClient, location, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingClient, log)
	createFeedbackUseCase := createFeedbackUC.NewUseCase(bookingClient, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(sessionSvc, createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	createFeedback := createFeedbackHandler.NewHandler(createFeedbackUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Календарь доступных слотов услуги
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Booking-сессии (форма бронирования) ---
	protected.HandleFunc("/sessions", bookingSession.HandleStart).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}", bookingSession.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/quantity", bookingSession.HandleSetQuantity).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/{sessionId}/slot", bookingSession.HandleSelectSlot).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/{sessionId}/coupon", bookingSession.HandleApplyCoupon).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/coupon", bookingSession.HandleRemoveCoupon).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{sessionId}/submit", bookingSession.HandleSubmit).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPut)

	// --- Отзывы ---
	protected.HandleFunc("/feedbacks", createFeedback.Handle).Methods(http.MethodPost)

	// Фоновые задачи: чистка протухших сессий и heartbeat booking API
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	sweepPoller := poller.New(
		time.Duration(cfg.Sessions.SweepIntervalSeconds)*time.Second,
		func(ctx context.Context) {
			sessionSvc.CleanupExpired(sessionTTL)
		},
	)
	sweepPoller.Start()

	heartbeatPoller := poller.New(
		time.Duration(cfg.Booking.HeartbeatIntervalSeconds)*time.Second,
		func(ctx context.Context) {
			if err := bookingClient.Health(ctx); err != nil {
				log.Warn("BookingAPI heartbeat failed: %v", err)
			}
		},
	)
	heartbeatPoller.Start()
	log.Info("Background pollers started (session sweep every %ds, heartbeat every %ds)",
		cfg.Sessions.SweepIntervalSeconds, cfg.Booking.HeartbeatIntervalSeconds)

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

	sweepPoller.Stop()
	heartbeatPoller.Stop()
	log.Info("Background pollers stopped")

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
