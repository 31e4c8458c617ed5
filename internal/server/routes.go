package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	s.echo.GET("/", s.handleIndex)

	api := s.echo.Group("/api")
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/cache/stats", s.handleCacheStats)
	api.POST("/cache/clear", s.handleCacheClear)

	// Unknown paths fall back to the analysis page.
	s.echo.RouteNotFound("/*", s.handleIndex)
}
