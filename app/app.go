package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agromarket-api/internal/controller"
	"agromarket-api/internal/events"
	"agromarket-api/internal/repo"
	"agromarket-api/internal/service"
	"agromarket-api/internal/worker"
	"agromarket-api/pkg/http_server"
	"agromarket-api/pkg/logger"
	"agromarket-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	_ "github.com/lib/pq"
)

const defaultSweepInterval = 10 * time.Minute

func runMigrations(postgresDB *postgres.Postgres, databaseName string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		logger.Fatal("failed to prepare migration driver", map[string]any{"error": err.Error()})
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		logger.Fatal("failed to load migrations", map[string]any{"error": err.Error()})
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			logger.Info("no change made by migration scripts", nil)
		} else {
			logger.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
		}
	}
}

func sweepInterval() time.Duration {
	raw := os.Getenv("SWEEP_INTERVAL")
	if raw == "" {
		return defaultSweepInterval
	}

	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		logger.Warn("invalid SWEEP_INTERVAL, using default", map[string]any{
			"value":   raw,
			"default": defaultSweepInterval.String(),
		})
		return defaultSweepInterval
	}

	return interval
}

func newEventPublisher() service.EventPublisher {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		logger.Info("REDIS_ADDR not set, realtime event feed disabled", nil)
		return events.NopPublisher{}
	}

	publisher, err := events.NewRedisPublisher(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		// The feed is a convenience; the API works without it.
		logger.Warn("realtime event feed unavailable", map[string]any{"error": err.Error()})
		return events.NopPublisher{}
	}

	return publisher
}

// databaseURL prefers a full POSTGRES_CONN string and falls back to
// assembling one from the split variables.
func databaseURL() string {
	if conn := os.Getenv("POSTGRES_CONN"); conn != "" {
		return conn
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USERNAME"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DATABASE"))
}

func Run() {
	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")

	logger.Info("connecting database...", nil)
	postgresDB, err := postgres.NewDB(databaseURL())
	if err != nil {
		logger.Fatal("error occurred while connecting to db", map[string]any{"error": err.Error()})
	}
	defer postgresDB.Close()

	logger.Info("running migrations...", nil)
	runMigrations(postgresDB, databaseEnv)

	cfg := service.Config{
		SuspensionResetOnApply: os.Getenv("SUSPENSION_RESET_POLICY") != "cumulative",
	}

	repositories := repo.NewRepositories(postgresDB)
	publisher := newEventPublisher()
	services := service.NewServices(repositories, publisher, cfg)

	handler := echo.New()

	logger.Info("setup routes...", nil)
	controller.SetupRoutesHandlers(handler, services)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	sweeper := worker.NewSweeper(services.Sweeper, sweepInterval())
	go sweeper.Run(workerCtx)

	logger.Info("starting server...", map[string]any{"address": serverAddressEnv})
	httpServer := http_server.New(handler, serverAddressEnv)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info("got signal: "+s.String(), nil)
	case err = <-httpServer.Notify():
		logger.Error("server notify error", map[string]any{"error": err.Error()})
	}

	logger.Info("shutting down...", nil)
	stopWorker()
	if err := httpServer.Shutdown(); err != nil {
		logger.Error("shutdown error", map[string]any{"error": err.Error()})
	} else {
		logger.Info("successful shutdown", nil)
	}
}
