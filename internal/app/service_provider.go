package app

import (
	"context"

	authAPI "slot_machine_backend/internal/api/auth"
	gameAPI "slot_machine_backend/internal/api/game"
	shopAPI "slot_machine_backend/internal/api/shop"
	"slot_machine_backend/internal/config"
	"slot_machine_backend/internal/config/env"
	"slot_machine_backend/internal/metrics"
	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/repository"
	"slot_machine_backend/internal/repository/auth_repo"
	"slot_machine_backend/internal/repository/ledger_repo"
	"slot_machine_backend/internal/repository/memory_ledger_repo"
	"slot_machine_backend/internal/repository/redis_ledger_repo"
	"slot_machine_backend/internal/repository/stats_repo"
	"slot_machine_backend/internal/repository/user_repo"
	"slot_machine_backend/internal/service"
	"slot_machine_backend/internal/service/auth"
	"slot_machine_backend/internal/service/game"
	"slot_machine_backend/internal/service/shop"
	"slot_machine_backend/pkg/userlock"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Store selection
	storeConfig config.StoreConfig

	// Game config
	gameCfg config.GameConfig

	// JWT
	jwtCfg config.JWTConfig

	// Per-user locks
	locks *userlock.Locker

	// Auth bits
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Game bits
	ledgerRepo repository.LedgerRepository
	statsRepo  repository.StatsRepository
	gameServ   service.GameService
	gameHand   *gameAPI.Handler

	// Shop bits
	shopServ service.ShopService
	shopHand *shopAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Addr(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) StoreConfig() config.StoreConfig {
	if sp.storeConfig == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeConfig = cfg
	}
	return sp.storeConfig
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) Locks() *userlock.Locker {
	if sp.locks == nil {
		sp.locks = userlock.New()
	}
	return sp.locks
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

// LedgerRepository - выбор хранилища леджеров по конфигурации
func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		switch sp.StoreConfig().LedgerStore() {
		case env.StoreRedis:
			sp.ledgerRepo = redis_ledger_repo.NewLedgerRepository(sp.RedisClient(ctx))
		case env.StoreMemory:
			sp.ledgerRepo = memory_ledger_repo.NewLedgerRepository()
		default:
			sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx))
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameCfg(),
			sp.LedgerRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.Locks(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) ShopService(ctx context.Context) service.ShopService {
	if sp.shopServ == nil {
		sp.shopServ = shop.NewShopService(
			sp.GameCfg(),
			sp.LedgerRepository(ctx),
			sp.TXManager(ctx),
			sp.Locks(),
		)
	}
	return sp.shopServ
}

func (sp *ServiceProvider) ShopHandler(ctx context.Context) *shopAPI.Handler {
	if sp.shopHand == nil {
		sp.shopHand = shopAPI.NewHandler(shopAPI.HandlerDeps{
			Serv: sp.ShopService(ctx),
		})
	}
	return sp.shopHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Game endpoints (под auth middleware)
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/spin", gameHandler.Spin)
			rr.Post("/deposit", gameHandler.Deposit)
			rr.Post("/convert-to-real", gameHandler.ConvertToReal)
			rr.Post("/convert-to-soft", gameHandler.ConvertToSoft)
			rr.Get("/data", gameHandler.CheckData)
		})

		// Shop endpoints (под auth middleware)
		shopHandler := sp.ShopHandler(ctx)
		r.Route("/shop", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Get("/catalog", shopHandler.Catalog)
			rr.Post("/purchase", shopHandler.Purchase)
			rr.Post("/equip", shopHandler.Equip)
		})

		// Prometheus
		r.Handle("/metrics", metrics.Handler())

		sp.router = r
	}

	return sp.router
}
