package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/travel_request_app/internal/core/services"
	"github.com/SscSPs/travel_request_app/internal/platform/config"
	"github.com/SscSPs/travel_request_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/travel_request_app/internal/seed"
	"github.com/SscSPs/travel_request_app/pkg/database"
	"github.com/spf13/pflag"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	fs := pflag.NewFlagSet("trm_seed", pflag.ExitOnError)
	file := fs.StringP("file", "f", "admins.yaml", "YAML file listing the admins")
	prune := fs.Bool("prune", false, "delete admins missing from the file")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadConfig(nil)
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	admins, err := seed.LoadAdminFile(*file)
	if err != nil {
		logger.Error("Failed to load seed file", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	authService := services.NewAuthService(cfg, repos.AuthUserRepo, repos.SessionRepo)

	result, err := seed.ApplyAdmins(ctx, logger, repos.AdminRepo, authService, admins, *prune)
	if err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		database.ClosePgxPool(dbPool)
		os.Exit(1)
	}
	logger.Info("Seeding completed",
		slog.Int("upserted", result.Upserted),
		slog.Int("logins_created", result.LoginsCreated),
		slog.Int("pruned", result.Pruned))
}
