package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-bookmarker/docs"
	"github.com/sbilibin2017/gw-bookmarker/internal/config"
	"github.com/sbilibin2017/gw-bookmarker/internal/facades"
	"github.com/sbilibin2017/gw-bookmarker/internal/handlers"
	"github.com/sbilibin2017/gw-bookmarker/internal/health"
	"github.com/sbilibin2017/gw-bookmarker/internal/jwt"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/middlewares"
	"github.com/sbilibin2017/gw-bookmarker/internal/repositories"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
	"github.com/sbilibin2017/gw-bookmarker/internal/services"
	"github.com/sbilibin2017/gw-bookmarker/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// catalogRPS bounds outbound calls to each catalog API.
const catalogRPS = 5

// @title gw-bookmarker API
// @version 1.0.0
// @description Personal book tracking: saved books, reviews and ratings per user
// @host localhost:3001
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
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

// app is everything the router needs.
type app struct {
	db          *sqlx.DB
	tokens      middlewares.Tokener
	validator   handlers.RequestValidator
	authLimiter *middlewares.KeyedRateLimiter

	auth    *services.AuthService
	users   *services.UserService
	shelf   *services.ShelfService
	reviews *services.ReviewService
	ratings *services.RatingService
	catalog *services.CatalogService
}

// newApp builds repositories and services on top of db.
func newApp(cfg *config.Config, db *sqlx.DB, cache services.CatalogCache, events services.EventSender) *app {
	tokens := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	savedBookRepo := repositories.NewSavedBookRepository(db, txGetter)
	reviewRepo := repositories.NewReviewRepository(db, txGetter)
	ratingRepo := repositories.NewRatingRepository(db, txGetter)

	google := facades.NewGoogleBooksFacade(cfg.GoogleBooksURL, cfg.GoogleAPIKey, cfg.CatalogTimeout, catalogRPS)
	nyt := facades.NewNYTBooksFacade(cfg.NYTBooksURL, cfg.NYTAPIKey, cfg.NYTListName, cfg.CatalogTimeout, catalogRPS)

	return &app{
		db:          db,
		tokens:      tokens,
		validator:   validation.New(),
		authLimiter: middlewares.NewKeyedRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst, middlewares.DefaultLimiterIdleTTL),

		auth:    services.NewAuthService(userReadRepo, userWriteRepo, tokens, events, cfg.BcryptCost),
		users:   services.NewUserService(userReadRepo, userWriteRepo, events),
		shelf:   services.NewShelfService(userReadRepo, savedBookRepo, reviewRepo, ratingRepo, events),
		reviews: services.NewReviewService(userReadRepo, savedBookRepo, reviewRepo, events),
		ratings: services.NewRatingService(userReadRepo, savedBookRepo, ratingRepo, events),
		catalog: services.NewCatalogService(google, nyt, cache),
	}
}

// newRouter mounts every route. Owner routes check the token before a
// transaction is opened.
func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.Authenticate(a.tokens))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Status(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Status(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	tx := middlewares.TxMiddleware(a.db)
	owner := middlewares.RequireOwner("username")

	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(a.authLimiter))
			r.With(tx).Post("/register", handlers.NewRegisterHandler(a.auth, a.validator))
			r.Post("/login", handlers.NewLoginHandler(a.auth, a.validator))
		})

		r.Route("/{username}", func(r chi.Router) {
			r.Use(owner)
			r.Get("/", handlers.NewGetUserHandler(a.users))
			r.With(tx).Patch("/", handlers.NewUpdateUserHandler(a.users, a.validator))
			r.With(tx).Delete("/", handlers.NewDeleteUserHandler(a.users))
		})
	})

	r.Route("/savedbooks", func(r chi.Router) {
		r.With(owner).Get("/read/user/{username}", handlers.NewListReadHandler(a.shelf))
		r.With(owner).Get("/wish/user/{username}", handlers.NewListWishHandler(a.shelf))

		r.Route("/{volumeID}/user/{username}", func(r chi.Router) {
			r.Use(owner)
			r.Get("/", handlers.NewGetSavedBookHandler(a.shelf))
			r.With(tx).Post("/", handlers.NewAddSavedBookHandler(a.shelf, a.validator))
			r.With(tx).Patch("/", handlers.NewSetReadStatusHandler(a.shelf, a.validator))
			r.With(tx).Delete("/", handlers.NewDeleteSavedBookHandler(a.shelf))
		})
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/{volumeID}", handlers.NewListReviewsHandler(a.reviews))
		r.With(owner, tx).Post("/{volumeID}/user/{username}", handlers.NewAddReviewHandler(a.reviews, a.validator))
		r.With(owner, tx).Patch("/id/{reviewID}/user/{username}", handlers.NewUpdateReviewHandler(a.reviews, a.validator))
		r.With(owner, tx).Delete("/id/{reviewID}/user/{username}", handlers.NewDeleteReviewHandler(a.reviews))
	})

	r.Route("/ratings", func(r chi.Router) {
		r.With(owner).Get("/{volumeID}/user/{username}", handlers.NewGetRatingHandler(a.ratings))
		r.With(owner, tx).Post("/{volumeID}/user/{username}", handlers.NewAddRatingHandler(a.ratings, a.validator))
		r.With(owner, tx).Patch("/id/{ratingID}/user/{username}", handlers.NewUpdateRatingHandler(a.ratings, a.validator))
		r.With(owner, tx).Delete("/id/{ratingID}/user/{username}", handlers.NewDeleteRatingHandler(a.ratings))
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", handlers.NewSearchBooksHandler(a.catalog))
		r.Get("/details/{volumeID}", handlers.NewBookDetailsHandler(a.catalog))
		r.Get("/bestsellers", handlers.NewBestsellersHandler(a.catalog))
		r.Get("/bestsellers/details/{isbn}", handlers.NewBestsellerDetailsHandler(a.catalog))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// run initializes the logger, database, Redis, Kafka and the HTTP and
// health servers, then blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis; the catalog works without its cache
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unavailable, catalog responses will not be cached", "error", err)
	}
	defer rdb.Close()
	cache := repositories.NewCatalogCacheRepository(rdb, cfg.CatalogCacheTTL)

	// Kafka is optional
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
	}
	events := services.NewEventPublisher(writer)
	defer events.Close()

	a := newApp(cfg, db, cache, events)
	defer a.authLimiter.Stop()

	// gRPC health
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("health listener failed: %w", err)
	}
	healthSrv := health.NewServer(db, health.DefaultInterval)
	healthSrv.Start(ctx, lis)
	defer healthSrv.Stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
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
