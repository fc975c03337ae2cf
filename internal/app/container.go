package app

import (
	"context"
	"log"
	"time"

	"techrec/internal/config"
	"techrec/internal/database"
	dbpostgres "techrec/internal/database/postgres"
	"techrec/internal/delivery/http/handler"
	"techrec/internal/delivery/http/middleware"
	"techrec/internal/delivery/http/routes"
	"techrec/internal/infrastructure/cache"
	"techrec/internal/pkg/jwt"
	"techrec/internal/repository"
	"techrec/internal/usecase"
	"techrec/internal/ws"
)

// Container owns every long-lived dependency and the wiring between them.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Routes *routes.Registry
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)
	engineCfg := cfg.EngineConfig()

	roleRepo := repository.NewPostgresRoleRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)

	batchUC := usecase.NewBatchMatchUsecase(roleRepo, engineCfg, cfg.Matching.BatchWorkers, logger)
	singleUC := usecase.NewMatchingUsecase(roleRepo, userSkillRepo, engineCfg)
	roleListUC := usecase.NewRoleListUsecase(roleRepo, userSkillRepo, engineCfg, redisCache, logger)

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(db, redisCache),
		Match:  handler.NewMatchHandler(batchUC, singleUC, userSkillRepo, notifier, logger),
		Roles:  handler.NewRolesHandler(roleListUC),
		WS:     ws.NewHandler(hub, logger),
		Auth:   authMw,
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
