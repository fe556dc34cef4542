package router

import (
	"ministerios/internal/ministerio/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodySize caps request payloads. Entity values themselves are not length-checked.
const MaxBodySize = "1M"

func RegisterRoutes(e *echo.Echo, h *handler.MinisterioHandler, connection string, gatherer prometheus.Gatherer) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	e.Use(middleware.BodyLimit(MaxBodySize))

	e.GET("/health", h.HealthCheck(connection))
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	v1.POST("/ministerios", h.PostMinisterio)
	v1.GET("/ministerios", h.GetMinisterios)
	v1.GET("/ministerios/:id", h.GetMinisterio)
	v1.PATCH("/ministerios/:id", h.PatchMinisterio)
	v1.DELETE("/ministerios/:id", h.DeleteMinisterio)
}
