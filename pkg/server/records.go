package server

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// GET /api/records
func (s *Server) handleGetRecords(c echo.Context) error {
	if s.Store == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence not configured")
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 500")
		}
		limit = n
	}

	records, err := s.Store.List(c.Request().Context(), userID(c), limit)
	if err != nil {
		log.Error("failed to list records", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list records")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"records": records,
		"count":   len(records),
	})
}
