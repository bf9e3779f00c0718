package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-user-admin/internal/config"
	"github.com/sbilibin2017/gw-user-admin/internal/facades"
	"github.com/sbilibin2017/gw-user-admin/internal/handlers"
	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/middlewares"
	"github.com/sbilibin2017/gw-user-admin/internal/services"
	"github.com/sbilibin2017/gw-user-admin/internal/workflow"

	_ "github.com/sbilibin2017/gw-user-admin/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-user-admin API
// @version 1.0.0
// @description Microservice for user signup and profile administration
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		providerConfigURL,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		providerConfigURL,
		kafkaAddr, kafkaTopic,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, provider, Kafka, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	providerConfigURL string,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Provider config delivery endpoint
	providerConfigURL = getEnv("PROVIDER_CONFIG_URL", "http://localhost:3000/api/firebase-config")

	// Kafka config; audit publishing is disabled when the address is empty
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "user-events")

	return
}

// run initializes the logger, provider facades, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	providerConfigURL string,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Fetch provider config. Startup aborts when the fetch fails: without
	// the connection parameters no backend call can be constructed.
	// The client carries no timeout; outbound calls run until the provider
	// answers or the connection drops.
	client := &http.Client{}
	cfg, err := config.Fetch(ctx, client, providerConfigURL)
	if err != nil {
		logger.Log.Fatal("failed to fetch provider config:", err)
	}

	// Initialize Kafka writer for audit events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka audit writer initialized: %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize facades
	identityFacade := facades.NewIdentityRESTFacade(cfg.IdentityURL(), cfg.APIKey, client)
	profilesFacade := facades.NewProfilesRESTFacade(cfg.DocumentsURL(), client)

	// Initialize shared workflow state
	state := workflow.NewState()

	// Initialize services
	signupService := services.NewSignupService(identityFacade, profilesFacade, state, kafkaWriter)
	userService := services.NewUserService(profilesFacade, profilesFacade, profilesFacade, state, kafkaWriter)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(signupService, userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	updateUserHandler := handlers.NewUpdateUserHandler(userService, userService)
	deleteUserHandler := handlers.NewDeleteUserHandler(userService, userService)
	statusHandler := handlers.NewStatusHandler(state)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", signupHandler)
		r.Get("/users", listUsersHandler)
		r.Patch("/users/{id}", updateUserHandler)
		r.Delete("/users/{id}", deleteUserHandler)
		r.Get("/status", statusHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
