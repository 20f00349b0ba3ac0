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

	checkPhoneHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/check_phone"
	createBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_booking"
	createConsultationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_consultation"
	createFeedbackHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_feedback"
	getAdminOverviewHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_admin_overview"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getFeedbackStatsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_feedback_stats"
	getMasterDashboardHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_master_dashboard"
	getMasterRatingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_master_ratings"
	getReviewFormHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_review_form"
	listReviewsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_reviews"
	masterLoginHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/master_login"
	submitReviewHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/submit_review"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	accountRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/masteraccount"
	reviewRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/review"
	tokenRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reviewtoken"
	surveyRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/survey"
	mastersService "github.com/m04kA/SMC-SalonService/internal/service/masters"
	reviewsService "github.com/m04kA/SMC-SalonService/internal/service/reviews"
	tokensService "github.com/m04kA/SMC-SalonService/internal/service/reviewtokens"
	schedulesService "github.com/m04kA/SMC-SalonService/internal/service/schedules"
	surveysService "github.com/m04kA/SMC-SalonService/internal/service/surveys"
	verificationService "github.com/m04kA/SMC-SalonService/internal/service/verification"
	checkPhoneUC "github.com/m04kA/SMC-SalonService/internal/usecase/check_phone"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	getReviewFormUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_review_form"
	submitReviewUC "github.com/m04kA/SMC-SalonService/internal/usecase/submit_review"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
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
	tokenRepository := tokenRepo.NewRepository(db)
	reviewRepository := reviewRepo.NewRepository(db)
	accountRepository := accountRepo.NewRepository(db)
	surveyRepository := surveyRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	scheduleSvc := schedulesService.NewService(cfg.MasterSchedules())
	tokenSvc := tokensService.NewService(tokenRepository, cfg.Reviews.TokenLifetimeHours, log, tokensService.RealTimeProvider{})
	reviewsSvc := reviewsService.NewService(reviewRepository, log)
	verificationSvc := verificationService.NewService(bookingRepository, log)
	surveysSvc := surveysService.NewService(surveyRepository, log)
	mastersSvc := mastersService.NewService(
		accountRepository,
		bookingRepository,
		reviewRepository,
		jwtManager,
		txMgr,
		log,
		mastersService.RealTimeProvider{},
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tokenSvc,
		scheduleSvc,
		txMgr,
		log,
		cfg.Reviews.BaseURL,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, scheduleSvc, log)
	submitReviewUseCase := submitReviewUC.NewUseCase(reviewRepository, tokenSvc, verificationSvc, txMgr, log)
	getReviewFormUseCase := getReviewFormUC.NewUseCase(tokenSvc, log)
	checkPhoneUseCase := checkPhoneUC.NewUseCase(verificationSvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	submitReview := submitReviewHandler.NewHandler(submitReviewUseCase, log)
	getReviewForm := getReviewFormHandler.NewHandler(getReviewFormUseCase, log)
	checkPhone := checkPhoneHandler.NewHandler(checkPhoneUseCase, log)
	listReviews := listReviewsHandler.NewHandler(reviewsSvc, log)
	getMasterRatings := getMasterRatingsHandler.NewHandler(reviewsSvc, log)
	createConsultation := createConsultationHandler.NewHandler(surveysSvc, log)
	createFeedback := createFeedbackHandler.NewHandler(surveysSvc, log)
	getFeedbackStats := getFeedbackStatsHandler.NewHandler(surveysSvc, log)
	masterLogin := masterLoginHandler.NewHandler(mastersSvc, log)
	getMasterDashboard := getMasterDashboardHandler.NewHandler(mastersSvc, log)
	getAdminOverview := getAdminOverviewHandler.NewHandler(mastersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Запись к мастеру
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Доступные слоты мастера на дату
	api.HandleFunc("/masters/{masterCode}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Рейтинги мастеров
	api.HandleFunc("/masters/ratings", getMasterRatings.Handle).Methods(http.MethodGet)

	// Отзывы
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", submitReview.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews/check-phone", checkPhone.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews/tokens/{token}", getReviewForm.Handle).Methods(http.MethodGet)

	// Анкеты
	api.HandleFunc("/consultations", createConsultation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/feedback", createFeedback.Handle).Methods(http.MethodPost)
	api.HandleFunc("/feedback/stats", getFeedbackStats.Handle).Methods(http.MethodGet)

	// Вход мастера
	api.HandleFunc("/masters/login", masterLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(jwtManager, log))

	// Личный кабинет мастера
	protected.HandleFunc("/masters/{masterCode}/dashboard", getMasterDashboard.Handle).Methods(http.MethodGet)

	// Сводка для администратора
	protected.HandleFunc("/admin/overview", getAdminOverview.Handle).Methods(http.MethodGet)

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
