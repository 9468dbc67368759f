package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/flight-service/internal/api/http"
	"github.com/spec-kit/flight-service/internal/api/http/handlers"
	"github.com/spec-kit/flight-service/internal/auth"
	"github.com/spec-kit/flight-service/internal/config"
	"github.com/spec-kit/flight-service/internal/observability"
	"github.com/spec-kit/flight-service/internal/persistence"
	"github.com/spec-kit/flight-service/internal/repository"
	"github.com/spec-kit/flight-service/internal/revocation"
	"github.com/spec-kit/flight-service/internal/service"
	"github.com/spec-kit/flight-service/internal/token"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	codec := token.NewCodec(cfg.Auth.JWTSecret)
	issuer := token.NewIssuer(codec, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL())
	verifier := token.NewVerifier(codec)

	var revocationStore revocation.Store
	switch cfg.Auth.RevocationBackend {
	case config.RevocationBackendRedis:
		revocationStore = revocation.NewRedisStore(redis.Client)
		logger.Info("using redis revocation store")
	default:
		pgStore := revocation.NewPostgresStore(pool)
		if pruned, err := pgStore.PruneExpired(ctx); err != nil {
			logger.Warn("failed to prune expired revocations", zap.Error(err))
		} else if pruned > 0 {
			logger.Info("pruned expired revocations", zap.Int64("count", pruned))
		}
		revocationStore = pgStore
		logger.Info("using postgres revocation store")
	}

	guard := auth.NewGuard(verifier, revocationStore)
	authMiddleware := auth.NewMiddleware(guard)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:        userRepo,
		Issuer:          issuer,
		Verifier:        verifier,
		Guard:           guard,
		RevocationStore: revocationStore,
	})
	airportService := service.NewAirportService(airportRepo)
	flightService := service.NewFlightService(flightRepo, airportRepo)

	if cfg.Seed.DemoData {
		loader := service.NewDataLoader(airportService, flightService, logger)
		if err := loader.LoadDemoData(ctx); err != nil {
			logger.Warn("failed to load demo data", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Airports:       handlers.NewAirportsHandler(airportService),
		Flights:        handlers.NewFlightsHandler(flightService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
