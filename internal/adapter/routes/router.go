package routes

import (
	"github.com/gin-gonic/gin"

	handler "passwordCheckerBackend/internal/adapter/http"
)

func SetupRoutes(r *gin.Engine, h *handler.PasswordHandler) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/generate", h.Generate)
		api.GET("/stats", h.Stats)
	}
}
