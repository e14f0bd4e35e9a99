package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	})
}

// Root is the welcome/discovery endpoint.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Todo API",
		"docs":    "/docs",
		"health":  "/health",
	})
}

// Docs lists the API surface so the discovery pointer in Root resolves.
func (h *HealthHandler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "Todo API",
		"version": h.version,
		"endpoints": []gin.H{
			{"method": "GET", "path": "/health", "description": "liveness probe"},
			{"method": "POST", "path": "/items", "description": "create an item"},
			{"method": "GET", "path": "/items", "description": "list items with limit, skip, is_done and search"},
			{"method": "GET", "path": "/items/stats", "description": "aggregate completion statistics"},
			{"method": "GET", "path": "/items/:id", "description": "get an item"},
			{"method": "PUT", "path": "/items/:id", "description": "partially update an item"},
			{"method": "DELETE", "path": "/items/:id", "description": "delete an item"},
		},
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/", h.Root)
	r.GET("/docs", h.Docs)
}
