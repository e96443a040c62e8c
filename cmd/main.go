package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-profit-tracker/internal/facades"
	"github.com/sbilibin2017/gw-profit-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-profit-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-profit-tracker/internal/migrations"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	SummaryCacheExp   time.Duration

	KafkaBrokers    []string
	KafkaEmailTopic string
	EmailFrom       string

	JWTSecretKey string
	JWTExp       time.Duration
	OTPExp       time.Duration

	AdminUsername string
	AdminPassword string
}

// @title gw-profit-tracker API
// @version 1.0.0
// @description Service for OTP-gated accounts, per-user value columns and weekly profit tracking
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT, OTP and admin configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.SummaryCacheExp, err = getSeconds("SUMMARY_CACHE_EXP_SECOND", "300"); err != nil {
		return
	}

	// Kafka config, an empty broker list disables email publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaEmailTopic = getEnv("KAFKA_EMAIL_TOPIC", "emails")
	cfg.EmailFrom = getEnv("EMAIL_FROM", "no-reply@profit-tracker.local")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// OTP config
	if cfg.OTPExp, err = getSeconds("OTP_EXP_SECOND", "600"); err != nil {
		return
	}

	// Admin seed
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "superadmin")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for outgoing emails; left as a nil interface when disabled
	var emailWriter facades.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaEmailTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		emailWriter = kw
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, verification emails will not be published")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	adminReadRepo := repositories.NewAdminReadRepository(db)
	adminWriteRepo := repositories.NewAdminWriteRepository(db)
	columnReadRepo := repositories.NewColumnReadRepository(db)
	columnWriteRepo := repositories.NewColumnWriteRepository(db)
	profitReadRepo := repositories.NewProfitReadRepository(db)
	profitWriteRepo := repositories.NewProfitWriteRepository(db)
	summaryCache := repositories.NewSummaryCacheRepository(rdb, cfg.SummaryCacheExp)

	// Initialize services
	emailFacade := facades.NewEmailKafkaFacade(emailWriter, cfg.EmailFrom, cfg.OTPExp)
	otpService := services.NewOTPService(userReadRepo, userWriteRepo, emailFacade,
		services.WithOTPExpiration(cfg.OTPExp))
	authService := services.NewAuthService(userReadRepo, userWriteRepo, otpService, tokens)
	adminService := services.NewAdminService(adminReadRepo, adminWriteRepo, tokens)
	ledgerService := services.NewLedgerService(columnWriteRepo, columnReadRepo, summaryCache)
	profitService := services.NewProfitService(profitWriteRepo, profitReadRepo, summaryCache)
	summaryService := services.NewSummaryService(columnReadRepo, profitReadRepo, summaryCache)

	if err := adminService.Seed(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return fmt.Errorf("admin seed failed: %w", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	userAuth := middlewares.AuthMiddleware(tokens, userReadRepo, models.RoleUser)
	adminAuth := middlewares.AuthMiddleware(tokens, adminReadRepo, models.RoleAdmin)

	r.Route("/api/users", func(r chi.Router) {
		// Public routes
		r.Post("/signup", handlers.NewSignupHandler(authService))
		r.Post("/verify-otp", handlers.NewVerifyOTPHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
		r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(userAuth)
			r.Post("/column-entry", handlers.NewAddColumnEntryHandler(ledgerService))
			r.Get("/column-entries/{columnName}", handlers.NewGetColumnEntriesHandler(ledgerService))
			r.Delete("/column-entries", handlers.NewDeleteColumnEntriesHandler(ledgerService))
			r.Get("/all-columns", handlers.NewAllColumnsHandler(ledgerService))
			r.Post("/profit-entry", handlers.NewAddProfitEntryHandler(profitService))
			r.Delete("/profit-entry", handlers.NewDeleteProfitEntryHandler(profitService))
			r.Get("/profit-entries", handlers.NewProfitEntriesHandler(profitService))
			r.Get("/net-profit", handlers.NewNetProfitHandler(summaryService))
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", handlers.NewAdminLoginHandler(adminService))
		r.With(adminAuth).Get("/dashboard", handlers.NewAdminDashboardHandler(adminService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
