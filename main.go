package main

import (
	"context"
	"fmt"

	"newsreader/config"
	"newsreader/di"
	"newsreader/driver/cache_driver"
	"newsreader/driver/store_db"
	"newsreader/rest"
	"newsreader/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting server", "port", cfg.Server.Port)

	ctx := context.Background()

	pool, err := store_db.InitDBPool(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	redisClient, err := cache_driver.NewRedisClient(cfg.Cache.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic(err)
	}
	defer redisClient.Close()

	container := di.NewApplicationComponents(cfg, pool, redisClient)

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Error("error starting server", "error", err)
		panic(err)
	}
}
