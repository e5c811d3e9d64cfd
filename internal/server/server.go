package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/MyelinBots/userapi-go/config"
	"github.com/MyelinBots/userapi-go/internal/db"
	userrepo "github.com/MyelinBots/userapi-go/internal/db/repositories/user"
	"github.com/MyelinBots/userapi-go/internal/handlers"
	"github.com/MyelinBots/userapi-go/internal/logger"
	"github.com/MyelinBots/userapi-go/internal/services/loyalty"
	"github.com/MyelinBots/userapi-go/internal/services/users"
)

func StartServer() error {
	cfg := config.LoadConfigOrPanic()

	log, err := logger.New(cfg.AppConfig.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.AppConfig.Mode == "prod" || cfg.AppConfig.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewDB(cfg.DBConfig)
	if err != nil {
		return err
	}

	repo := userrepo.NewUserRepository(database)
	loyaltyClient := loyalty.NewLoyaltyClient(log, loyalty.ConfigFromApp(cfg.LoyaltyConfig))
	userService := users.NewUserService(repo, loyaltyClient, log)
	userHandler := handlers.NewUserHandler(userService, log)

	router := NewRouter(RouterConfig{UserHandler: userHandler})

	addr := fmt.Sprintf(":%d", cfg.AppConfig.Port)
	log.Info("starting server", "addr", addr, "version", cfg.AppConfig.Version)
	return router.Run(addr)
}
