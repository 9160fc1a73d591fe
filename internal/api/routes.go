package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints under /api.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/generate", h.GenerateFromQuery)
		apiGroup.POST("/generate", h.Generate)

		apiGroup.GET("/export", h.ExportFromQuery)
		apiGroup.POST("/export", h.Export)

		apiGroup.GET("/preview", h.PreviewFromQuery)
		apiGroup.POST("/preview", h.Preview)

		apiGroup.GET("/brand", h.BrandFromQuery)
		apiGroup.POST("/brand", h.Brand)

		apiGroup.GET("/presets", h.Presets)
		apiGroup.GET("/spec-example", h.SpecExample)
		apiGroup.GET("/health", h.Health)
	}
}

// NewRouter builds a gin engine with recovery, request ids and access logs.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog(h.log))

	RegisterRoutes(router, h)
	return router
}
