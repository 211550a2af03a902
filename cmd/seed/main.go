package main

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/config"
	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/observability"
	"github.com/spec-kit/realestate-service/internal/persistence"
	"github.com/spec-kit/realestate-service/internal/repository"
)

// Seeds the initial admin account. Safe to run repeatedly: an existing
// account with the configured email is left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Seed.AdminPassword == "" {
		logger.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	users := repository.NewUserRepository(pg.PoolHandle())

	if existing, err := users.GetByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		logger.Info("admin account already exists", zap.String("user_id", existing.ID))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		logger.Fatal("failed to look up admin account", zap.Error(err))
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}

	admin := &domain.User{
		Name:         cfg.Seed.AdminName,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		ProfileImage: domain.DefaultProfileImage,
		Active:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin account", zap.Error(err))
	}

	logger.Info("admin account created", zap.String("user_id", admin.ID), zap.String("email", admin.Email))
}
