package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/todo-labs/todo-backend/internal/api/http"
	itemshttp "github.com/todo-labs/todo-backend/internal/items/http"
	"github.com/todo-labs/todo-backend/internal/items/repository"
	"github.com/todo-labs/todo-backend/internal/items/service"
	"github.com/todo-labs/todo-backend/internal/middleware"
)

type RouterDeps struct {
	Version      string
	AllowOrigins []string
	Store        repository.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail":      "internal server error",
			"status_code": http.StatusInternalServerError,
			"timestamp":   time.Now().UTC(),
		})
	}))
	r.Use(cors.New(corsConfig(dep.AllowOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.Version)
	healthHandler.RegisterRoutes(r)

	itemSvc := service.NewItemService(dep.Store)
	itemHandler := itemshttp.NewHandler(itemSvc)
	itemHandler.Register(r.Group("/items"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-Id"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
