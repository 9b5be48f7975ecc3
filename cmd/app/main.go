package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/FrederickOB/test-hydrogen-app/internal/admin"
	"github.com/FrederickOB/test-hydrogen-app/internal/config"
	"github.com/FrederickOB/test-hydrogen-app/internal/middleware"
	"github.com/FrederickOB/test-hydrogen-app/internal/product"
	"github.com/FrederickOB/test-hydrogen-app/internal/quiz"
	"github.com/FrederickOB/test-hydrogen-app/internal/recommended"
	"github.com/FrederickOB/test-hydrogen-app/internal/storefront"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	setupLogging(cfg.Log)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	cache, closeCache := newCache(cfg.Cache)
	defer closeCache()

	client := storefront.NewClient(cfg.Storefront, cache, cfg.Cache.TTLDuration())
	defer client.Close()
	catalog := storefront.NewCatalog(client)

	quizRepo, closeDB := newQuizRepository(cfg.Database)
	defer closeDB()

	recommendedService := recommended.NewService(catalog, cfg.Recommendations.Count)
	recommendedHandler := recommended.NewHandler(recommendedService, nil)
	productHandler := product.NewHandler(product.NewService(catalog, recommendedService))
	quizHandler := quiz.NewHandler(quiz.NewService(catalog, quizRepo, cfg.Quiz.ProductsFirst, cfg.Quiz.TaxonomyFirst))

	app := fiber.New(fiber.Config{
		AppName:      "test-hydrogen-app",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Storefront.Timeout+15) * time.Second,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	setupCORS(app, cfg.Server.AllowOrigins)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	registerPublicRoutes(app, recommendedHandler, quizHandler, productHandler)

	if cfg.Server.JWTSecret != "" {
		app.Use("/api/v1/admin", middleware.AdminGuard(cfg.Server.JWTSecret))
		admin.NewHandler(cache).RegisterProtectedRoutes(app)
	} else {
		log.Warn("server.jwt_secret is not set, admin routes are disabled")
	}

	go func() {
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()
	log.Infof("Storefront backend listening on %s (storefront %s)", cfg.Server.Addr(), cfg.Storefront.GraphQLURL())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}

func setupLogging(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.RequestIDHeader,
	}))
}

// registerPublicRoutes mounts the storefront routes. The recommended and quiz paths must be
// registered before /api/v1/products/:handle.
func registerPublicRoutes(app *fiber.App, rec *recommended.Handler, qz *quiz.Handler, prod *product.Handler) {
	rec.RegisterPublicRoutes(app)
	qz.RegisterPublicRoutes(app)
	prod.RegisterPublicRoutes(app)
}

// newCache returns nil when caching is disabled, Redis when a host is configured and the
// in-process cache otherwise.
func newCache(cfg config.CacheConfig) (storefront.Cache, func()) {
	if !cfg.Enabled {
		log.Info("Storefront response cache disabled")
		return nil, func() {}
	}
	if cfg.Redis.Host == "" {
		log.Info("Using in-memory storefront response cache")
		return storefront.NewMemoryCache(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Infof("Using Redis storefront response cache at %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return storefront.NewRedisCache(rdb), func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("Failed to close Redis: %v", err)
		}
	}
}

func newQuizRepository(cfg config.DatabaseConfig) (quiz.Repository, func()) {
	if cfg.URL == "" {
		log.Info("database.url not set, serving built-in quiz answers")
		return quiz.NewInMemoryRepository(quiz.DefaultRelationships()), func() {}
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return quiz.NewPostgresRepository(db), func() {
		if err := db.Close(); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}
}
