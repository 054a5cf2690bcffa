package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/UtkarshPandey04/Reuse-hub-innotech/docs"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/facades"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/handlers"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/jwt"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/middlewares"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/migrations"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/repositories"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/workers"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
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
	AppEnv   string
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
	RedisProductTTL   time.Duration

	KafkaBrokers     []string
	KafkaRatingTopic string
	KafkaGroupID     string

	JWTSecretKey string
	JWTExp       time.Duration

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
	AuthTrustedProxies []*net.IPNet
}

func (c *config) development() bool {
	return c.AppEnv == "development"
}

// @title reuse-hub API
// @version 1.0.0
// @description Sustainability marketplace: accounts, products, reviews with rating aggregates, carts and the activity feed
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT and rate limit configuration.
// The signing secret has no default: startup fails without a usable one.
func parseConfig(path string) (*config, error) {
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

	var (
		cfg config
		err error
	)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppEnv = getEnv("APP_ENV", "production")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "reusehub")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	ttl, err := getInt("REDIS_PRODUCT_TTL_SECOND", "300")
	if err != nil {
		return nil, err
	}
	cfg.RedisProductTTL = time.Duration(ttl) * time.Second

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaRatingTopic = getEnv("KAFKA_RATING_TOPIC", "product-rating-recompute")
	cfg.KafkaGroupID = getEnv("KAFKA_GROUP_ID", "reuse-hub-rating")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if !jwt.IsUsableSecret(cfg.JWTSecretKey) {
		return nil, errors.New("JWT_SECRET_KEY must be set to a non-placeholder value")
	}
	exp, err := getInt("JWT_EXP_SECOND", "604800")
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(exp) * time.Second

	// Rate limit config
	if cfg.AuthRateLimitRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("AUTH_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.AuthRateLimitBurst, err = getInt("AUTH_RATE_LIMIT_BURST", "10"); err != nil {
		return nil, err
	}
	if cfg.AuthTrustedProxies, err = middlewares.ParseTrustedProxies(getEnv("AUTH_TRUSTED_PROXIES", "")); err != nil {
		return nil, fmt.Errorf("AUTH_TRUSTED_PROXIES: %w", err)
	}

	return &cfg, nil
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.development()); err != nil {
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

	if err := migrations.Apply(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
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

	// Kafka producer and consumer for deferred rating recomputes
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaRatingTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	recomputeFacade := facades.NewRatingRecomputeKafkaFacade(kafkaWriter)
	defer recomputeFacade.Close()

	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		GroupID: cfg.KafkaGroupID,
		Topic:   cfg.KafkaRatingTopic,
	})

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	productReadRepo := repositories.NewProductReadRepository(db)
	productWriteRepo := repositories.NewProductWriteRepository(db)
	productCacheRepo := repositories.NewProductCacheRepository(rdb, cfg.RedisProductTTL)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	cartWriteRepo := repositories.NewCartWriterRepository(db)
	cartReadRepo := repositories.NewCartReaderRepository(db)
	activityWriteRepo := repositories.NewActivityWriteRepository(db)
	activityReadRepo := repositories.NewActivityReadRepository(db)

	// Initialize services
	activityService := services.NewActivityService(activityWriteRepo, activityReadRepo)
	defer activityService.Wait()

	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, activityService)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	productService := services.NewProductService(productReadRepo, productWriteRepo, productCacheRepo, activityService)
	reviewService := services.NewReviewService(
		reviewReadRepo,
		reviewWriteRepo,
		productReadRepo,
		productWriteRepo,
		productCacheRepo,
		recomputeFacade,
		activityService,
	)
	cartService := services.NewCartService(cartWriteRepo, cartReadRepo, productReadRepo, activityService)

	// Background worker
	recomputeWorker := workers.NewRatingRecomputeWorker(kafkaReader, reviewService)
	defer recomputeWorker.Close()

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	getProfileHandler := handlers.NewGetProfileHandler(profileService, tokens)
	updateProfileHandler := handlers.NewUpdateProfileHandler(profileService, tokens)
	listProductsHandler := handlers.NewListProductsHandler(productService)
	getProductHandler := handlers.NewGetProductHandler(productService)
	createProductHandler := handlers.NewCreateProductHandler(productService, tokens)
	listSellerProductsHandler := handlers.NewListSellerProductsHandler(productService)
	updateProductHandler := handlers.NewUpdateProductHandler(productService, tokens)
	deleteProductHandler := handlers.NewDeleteProductHandler(productService, tokens)
	listReviewsHandler := handlers.NewListReviewsHandler(reviewService)
	submitReviewHandler := handlers.NewSubmitReviewHandler(reviewService, tokens)
	addToCartHandler := handlers.NewAddToCartHandler(cartService, tokens)
	getCartHandler := handlers.NewGetCartHandler(cartService, tokens)
	removeFromCartHandler := handlers.NewRemoveFromCartHandler(cartService, tokens)
	listActivitiesHandler := handlers.NewListActivitiesHandler(activityService)
	redisPing := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	healthHandler := handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"postgres": db.PingContext,
		"redis":    redisPing,
	})

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	if cfg.development() {
		r.Use(middlewares.DevModeMiddleware)
	}

	// Credential endpoints, rate limited per client IP.
	// Forwarded headers are honoured only from AUTH_TRUSTED_PROXIES.
	r.Route("/auth", func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(
			cfg.AuthRateLimitRPS,
			cfg.AuthRateLimitBurst,
			middlewares.WithTrustedProxies(cfg.AuthTrustedProxies),
		))
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
	})

	// Public routes
	r.Get("/products", listProductsHandler)
	r.Get("/products/{id}", getProductHandler)
	r.Get("/products/user/{userId}", listSellerProductsHandler)
	r.Get("/reviews", listReviewsHandler)
	r.Get("/activities", listActivitiesHandler)
	r.Get("/health", healthHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/users/profile", getProfileHandler)
		r.Put("/users/profile", updateProfileHandler)
		r.Post("/products", createProductHandler)
		r.Put("/products/{id}", updateProductHandler)
		r.Delete("/products/{id}", deleteProductHandler)
		r.Post("/reviews", submitReviewHandler)
		r.Post("/cart", addToCartHandler)
		r.Get("/cart", getCartHandler)
		r.Delete("/cart", removeFromCartHandler)
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
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		logger.Log.Infow("rating recompute worker started", "topic", cfg.KafkaRatingTopic)
		if err := recomputeWorker.Run(workerCtx); err != nil {
			errChan <- fmt.Errorf("rating recompute worker failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	stopWorker()
	<-workerDone

	logger.Log.Info("HTTP server stopped gracefully")
	return runErr
}
