package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleCacheStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.engine.CacheStats())
}

func (s *Server) handleCacheClear(c echo.Context) error {
	s.engine.ClearCache()
	return c.JSON(http.StatusOK, map[string]string{"status": "cache cleared"})
}
