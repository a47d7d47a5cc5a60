package app

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ideathon-registration-api/internal/config"
	"ideathon-registration-api/internal/controller"
	"ideathon-registration-api/internal/notifier"
	"ideathon-registration-api/internal/repo"
	"ideathon-registration-api/internal/service"
	"ideathon-registration-api/pkg/http_server"
	"ideathon-registration-api/pkg/logger"
	"ideathon-registration-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		slog.Error("migration driver init failed", "error", err)
		os.Exit(1)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		slog.Error("migration setup failed", "error", err)
		os.Exit(1)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			slog.Info("no change made by migration scripts")
		} else {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}
}

func Run() {
	cfg := config.Load()
	logger.Setup(cfg.Env)

	slog.Info("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer postgresDB.Close()

	slog.Info("Running migrations...")
	runMigrations(postgresDB)

	repositories := repo.NewRepositories(postgresDB)
	policy := service.EligibilityPolicy{
		PitchMinLength:       cfg.PitchMinLength,
		AllowedEmailSuffixes: cfg.AllowedEmailSuffixes,
	}
	services := service.NewServices(repositories, policy, notifier.NewLogAcknowledger())
	handler := echo.New()

	slog.Info("Setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	slog.Info("Starting server...", "address", cfg.ServerAddress)
	httpServer := http_server.New(handler, cfg.ServerAddress)

	slog.Info("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		slog.Info("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		slog.Error("server stopped", "error", err)
	}

	slog.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("Successful shutdown")
}
