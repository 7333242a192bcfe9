package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Upload)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
	rg.GET("/:id/download", h.Download)
	rg.DELETE("/:id", h.Delete)
}
