package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/estatedesk/crm-api/internal/api"
	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
	"github.com/estatedesk/crm-api/internal/core/service"
	"github.com/estatedesk/crm-api/internal/infrastructure/config"
	mongodb "github.com/estatedesk/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/estatedesk/crm-api/internal/infrastructure/db/redis"
	"github.com/estatedesk/crm-api/internal/infrastructure/workpool"
	"github.com/estatedesk/crm-api/internal/pkg/password"
	"github.com/estatedesk/crm-api/pkg/logger"
)

// @title        Real Estate CRM API
// @version      1.0
// @description  Authentication, lead and property-portfolio management for real-estate sales teams.

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	if err := bootstrapAdmin(ctx, cfg, db, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap")
	}

	pool := workpool.New(cfg.Auth.VerifyWorkers, log)
	pool.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, pool, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewLeadRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewBuildingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewUnitRepository(db).EnsureIndexes(ctx)
}

// bootstrapAdmin seeds the configured administrator account so a fresh
// deployment has a way in. An already-existing username is not an error.
func bootstrapAdmin(ctx context.Context, cfg *config.Config, db *mongo.Database, log zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}

	users := service.NewUserService(
		mongodb.NewUserRepository(db),
		password.NewHasher(cfg.Auth.BcryptCost),
		log,
	)

	_, err := users.Create(ctx, ports.CreateUserInput{
		Username:  cfg.Admin.Username,
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      string(domain.RoleAdmin),
	})
	if errors.Is(err, domain.ErrUsernameTaken) {
		return nil
	}
	if err == nil {
		log.Info().Str("username", cfg.Admin.Username).Msg("admin account created")
	}
	return err
}
