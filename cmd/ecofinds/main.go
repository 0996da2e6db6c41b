package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/ecofinds-marketplace/docs"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/handlers"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/config"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/health"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/migrations"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	service "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/services"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/tracing"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/pkg/kafka"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						EcoFinds Marketplace API
//	@version					1.0
//	@description				Second-hand marketplace: catalog, cart, checkout and purchase history.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(repos.DB); err != nil {
			slog.Error("❌ Error migrating the database", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Outbound channels
	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid API key not set, seller emails disabled")
	}

	kafkaClient := kafka.NewClient(cfg.Kafka.Brokers)
	var publisher service.EventPublisher
	if kafkaPublisher := kafka.NewPublisherFromClient(kafkaClient, cfg.Kafka.Topic); kafkaPublisher != nil {
		publisher = kafkaPublisher
		defer kafkaPublisher.Close()
	} else {
		slog.Warn("Kafka brokers not set, order events disabled")
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	userService := service.NewUserService(repos.Users, repository.NewRateLimitRepo(redisClient, cfg), jwtKey, tokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Products, productCache, cfg.Cache.DefaultTTL)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Users, repos.Products)
	cartHandler := handlers.NewCartHandler(cartService)
	notifier := service.NewBackgroundNotifier(service.NewCheckoutNotifier(repos.Users, repos.Products, emailService, publisher))
	checkoutService := service.NewCheckoutService(repos.Orders, repository.NewIdempotencyRepo(redisClient), notifier, cfg.Checkout.IdempotencyTTL)
	orderService := service.NewOrderService(repos.Orders, repos.Users)
	orderHandler := handlers.NewOrderHandler(checkoutService, orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{Kafka: kafkaClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("PATCH /api/v1/users/profile", authMiddleware.Authenticate(userHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/users/listings", authMiddleware.Authenticate(productHandler.MyListings()))
	routerMux.HandleFunc("GET /api/v1/users/purchases", authMiddleware.Authenticate(orderHandler.ListPurchases()))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("PATCH /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/purchases", authMiddleware.Authenticate(orderHandler.ListPurchases()))
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(routerMux, handler)
	handler = otelhttp.NewHandler(handler, "ecofinds-http")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.Any("error", err))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	// repositories, redis and kafka close in the deferred calls after this
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()

	if err := notifier.Wait(drainCtx); err != nil {
		slog.Warn("⚠️ Pending checkout notifications abandoned", slog.Any("error", err))
	} else {
		slog.Info("✅ Checkout notifications drained")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.Any("error", err))
	}
}
