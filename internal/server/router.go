package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MyelinBots/userapi-go/internal/handlers"
	"github.com/MyelinBots/userapi-go/internal/healthcheck"
	"github.com/MyelinBots/userapi-go/internal/requestid"
)

type RouterConfig struct {
	UserHandler *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
	}))

	router.GET("/healthcheck", healthcheck.Handler())

	api := router.Group("/api")
	{
		api.GET("/users", cfg.UserHandler.ListUsers)
		api.GET("/users/:usernameOrEmail", cfg.UserHandler.GetUser)
		api.POST("/users", cfg.UserHandler.CreateUser)
		api.PUT("/users/:userId", cfg.UserHandler.UpdateUser)
		api.DELETE("/users/:userId", cfg.UserHandler.DeleteUser)
	}

	return router
}
