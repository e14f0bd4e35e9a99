package http

import "github.com/gin-gonic/gin"

// Register attaches item routes to the given router group. The static
// /stats route is registered ahead of /:id; gin matches static segments
// before parameters, so stats is never read as an item id.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/stats", h.stats)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
