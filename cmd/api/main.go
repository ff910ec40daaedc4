package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/trhgquan/flight-manager/internal/adapter/cache"
	"github.com/trhgquan/flight-manager/internal/adapter/handler"
	"github.com/trhgquan/flight-manager/internal/adapter/repository/postgres"
	"github.com/trhgquan/flight-manager/internal/core/ports"
	"github.com/trhgquan/flight-manager/internal/core/services"
	"github.com/trhgquan/flight-manager/internal/platform/database"
	"github.com/trhgquan/flight-manager/internal/platform/ratelimit"
)

func loadEnv(filepath string, log *logrus.Logger) {
	file, err := os.Open(filepath)
	if err != nil {
		log.Info("no .env file found, using OS environment")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.WithError(err).Warn("could not read .env file")
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	loadEnv(".env", log)

	dbConfig := database.Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", ""),
		DBName:   envOr("DB_NAME", "flight_manager"),
	}

	db, err := database.NewPostgresDB(dbConfig, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database after retries")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	redisAddr := fmt.Sprintf("%s:%s", envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379"))
	log.WithField("addr", redisAddr).Info("connecting to redis")

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	log.Info("redis connected")

	catalogRepo := postgres.NewCatalogRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)

	clock := ports.SystemClock{}

	catalogService := services.NewCatalogService(catalogRepo, clock)
	if err := catalogService.Seed(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to seed ticket classes")
	}

	inventoryService := services.NewInventoryService(catalogRepo, ticketRepo, redisClient)
	bookingService := services.NewBookingService(catalogRepo, ticketRepo, reservationRepo, redisClient)
	searchService := services.NewSearchService(catalogRepo)
	reportCache := cache.NewRedisReportCache(redisClient, 5*time.Minute)
	reportService := services.NewReportService(catalogRepo, ticketRepo, searchService, reportCache, clock)
	customerService := services.NewCustomerService(customerRepo, clock)

	bookingHandler := handler.NewBookingHandler(bookingService)
	flightHandler := handler.NewFlightHandler(searchService, inventoryService)
	reportHandler := handler.NewReportHandler(reportService)
	customerHandler := handler.NewCustomerHandler(customerService)

	limiter := ratelimit.NewKeyedLimiter(ratelimit.DefaultConfig())

	mux := http.NewServeMux()

	mux.HandleFunc("/bookings", handler.RateLimit(limiter, bookingHandler.Book))
	mux.HandleFunc("/tickets/pay", handler.RateLimit(limiter, bookingHandler.Pay))
	mux.HandleFunc("/reservations/cancel", handler.RateLimit(limiter, bookingHandler.Cancel))
	mux.HandleFunc("/flights/search", flightHandler.Search)
	mux.HandleFunc("/flights/availability", flightHandler.Availability)
	mux.HandleFunc("/reports/flight", reportHandler.FlightStatistics)
	mux.HandleFunc("/reports/period", reportHandler.PeriodReport)
	mux.HandleFunc("/customers/ensure", customerHandler.Ensure)

	server := &http.Server{
		Addr:         ":" + envOr("PORT", "8080"),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exiting")
}
