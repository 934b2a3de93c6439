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
	"github.com/rs/cors"

	adminLoginHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/admin_logout"
	approveArtistHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/approve_artist"
	bulkClosedSlotsHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/bulk_closed_slots"
	cancelReservationHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/create_reservation"
	getCalendarHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/get_calendar"
	getDaySlotsHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/get_day_slots"
	getReservationHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/get_reservation"
	listArtistsHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/list_artists"
	listReservationsHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/list_reservations"
	lookupArtistHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/lookup_artist"
	registerArtistHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/register_artist"
	rejectArtistHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/reject_artist"
	resetDemoHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/reset_demo"
	setClosedDayHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/set_closed_day"
	setClosedSlotHandler "github.com/m04kA/SMC-StageCalendar/internal/api/handlers/set_closed_slot"
	"github.com/m04kA/SMC-StageCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StageCalendar/internal/config"
	memoryKV "github.com/m04kA/SMC-StageCalendar/internal/infra/kv/memory"
	postgresKV "github.com/m04kA/SMC-StageCalendar/internal/infra/kv/postgres"
	redisKV "github.com/m04kA/SMC-StageCalendar/internal/infra/kv/redis"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-StageCalendar/internal/service/admin"
	"github.com/m04kA/SMC-StageCalendar/internal/service/artists"
	"github.com/m04kA/SMC-StageCalendar/internal/service/availability"
	"github.com/m04kA/SMC-StageCalendar/internal/service/closedslots"
	"github.com/m04kA/SMC-StageCalendar/internal/service/horizon"
	"github.com/m04kA/SMC-StageCalendar/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-StageCalendar/internal/usecase/create_reservation"
	seedDemoUC "github.com/m04kA/SMC-StageCalendar/internal/usecase/seed_demo"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
	"github.com/m04kA/SMC-StageCalendar/pkg/metrics"
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

	log.Info("Starting SMC-StageCalendar...")
	log.Info("Configuration loaded from config.toml")

	ctx := context.Background()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем транспорт снапшота
	kvStore, closeKV, err := openKeyValue(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer closeKV()

	// Общее хранилище состояния
	var storeOpts []snapshot.Option
	if metricsCollector != nil {
		storeOpts = append(storeOpts, snapshot.WithMetrics(metricsCollector))
	}
	store := snapshot.NewStore(kvStore, cfg.Storage.Key, log, storeOpts...)
	if err := store.Load(ctx); err != nil {
		log.Fatal("Failed to load snapshot %s: %v", cfg.Storage.Key, err)
	}

	// Гейт администратора
	gate, err := admin.NewGate(cfg.Admin.PasswordHash, log)
	if err != nil {
		log.Fatal("Failed to initialize admin gate: %v", err)
	}

	// Инициализируем сервисы
	timeProvider := &horizon.RealTimeProvider{}
	bookingHorizon := horizon.New(cfg.Booking.HorizonMonths, timeProvider)

	var (
		registryOpts []closedslots.Option
		ledgerOpts   []reservations.Option
	)
	if metricsCollector != nil {
		registryOpts = append(registryOpts, closedslots.WithMetrics(metricsCollector))
		ledgerOpts = append(ledgerOpts, reservations.WithMetrics(metricsCollector))
	}

	registry := closedslots.NewRegistry(store, gate, bookingHorizon, cfg.Booking.BulkBatchSize, log, registryOpts...)
	directory := artists.NewDirectory(store, gate, timeProvider, log)
	ledger := reservations.NewLedger(store, gate, bookingHorizon, timeProvider, log, ledgerOpts...)
	resolver := availability.NewResolver(store, bookingHorizon)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(directory, ledger, resolver, log)
	seedDemoUseCase := seedDemoUC.NewUseCase(store, gate, bookingHorizon, timeProvider, cfg.Seed.RandomSeed, log)

	// Демо-данные для пустого хранилища
	if cfg.Seed.Enabled {
		if _, err := seedDemoUseCase.Execute(ctx, &seedDemoUC.Request{}); err != nil {
			log.Fatal("Failed to seed demo data: %v", err)
		}
	}

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(resolver, log)
	getCalendar := getCalendarHandler.NewHandler(resolver, bookingHorizon, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(ledger, log)
	getReservation := getReservationHandler.NewHandler(ledger, log)
	cancelReservation := cancelReservationHandler.NewHandler(ledger, log)
	registerArtist := registerArtistHandler.NewHandler(directory, log)
	lookupArtist := lookupArtistHandler.NewHandler(directory, log)
	listArtists := listArtistsHandler.NewHandler(directory, gate, log)
	approveArtist := approveArtistHandler.NewHandler(directory, log)
	rejectArtist := rejectArtistHandler.NewHandler(directory, log)
	setClosedSlot := setClosedSlotHandler.NewHandler(registry, log)
	setClosedDay := setClosedDayHandler.NewHandler(registry, log)
	bulkClosedSlots := bulkClosedSlotsHandler.NewHandler(registry, log)
	adminLogin := adminLoginHandler.NewHandler(gate, log)
	adminLogout := adminLogoutHandler.NewHandler(gate, log)
	resetDemo := resetDemoHandler.NewHandler(seedDemoUseCase, log)

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
	// PUBLIC ROUTES
	// ============================================================

	// --- Календарь ---
	api.HandleFunc("/days/{date}", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", getCalendar.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// --- Артисты ---
	api.HandleFunc("/artists", registerArtist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/artists/lookup", lookupArtist.Handle).Methods(http.MethodGet)

	// --- Вход администратора ---
	loginLimiter := middleware.NewRateLimiter(cfg.Admin.LoginRatePerMinute, cfg.Admin.LoginBurst)
	api.Handle("/admin/login", loginLimiter.Limit(http.HandlerFunc(adminLogin.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (сервисы проверяют гейт администратора)
	// ============================================================

	api.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	api.HandleFunc("/artists", listArtists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/approve", approveArtist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/artists/{artistId}", rejectArtist.Handle).Methods(http.MethodDelete)

	api.HandleFunc("/closed-slots/bulk", bulkClosedSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/closed-slots/{date}/{slotId}", setClosedSlot.Handle).Methods(http.MethodPut)
	api.HandleFunc("/closed-slots/{date}", setClosedDay.Handle).Methods(http.MethodPut)

	api.HandleFunc("/admin/reset-demo", resetDemo.Handle).Methods(http.MethodPost)

	// CORS для браузерного UI
	var handler http.Handler = r
	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(r)
		log.Info("CORS enabled for %v", cfg.Server.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

// openKeyValue подключает транспорт снапшота по storage.driver
func openKeyValue(ctx context.Context, cfg *config.Config, log *logger.Logger) (snapshot.KeyValue, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		store := postgresKV.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return store, func() { _ = db.Close() }, nil

	case config.StorageRedis:
		client, err := redisKV.NewClient(ctx, redisKV.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}

		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return redisKV.NewStore(client), func() { _ = client.Close() }, nil

	default:
		log.Warn("Using in-memory storage: data is lost on restart")
		return memoryKV.NewStore(), func() {}, nil
	}
}
