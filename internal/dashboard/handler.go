package dashboard

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/pos-analytics/internal/core/errors"
	"github.com/aevon-lab/pos-analytics/internal/core/period"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all dashboard API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/dashboard", s.HandleNetworkOverview)
	r.GET("/v1/daily", s.HandleDaily)
	r.GET("/v1/locations/:location_id/dashboard", s.HandleLocationOverview)
	r.GET("/v1/locations/:location_id/forecast", s.HandleForecast)
}

type locationURI struct {
	LocationID int `uri:"location_id" binding:"required,min=1"`
}

type overviewQuery struct {
	Range  string `form:"range"`
	SortBy string `form:"sort"`
}

// HandleNetworkOverview handles GET /v1/dashboard
// Query parameters: range, sort
func (s *Service) HandleNetworkOverview(c *gin.Context) {
	var query overviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	s.respondOverview(c, OverviewRequest{Range: query.Range, SortBy: query.SortBy})
}

// HandleLocationOverview handles GET /v1/locations/:location_id/dashboard
// Query parameters: range, sort
func (s *Service) HandleLocationOverview(c *gin.Context) {
	var uri locationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "Invalid path parameters", err)
		return
	}
	var query overviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	s.respondOverview(c, OverviewRequest{Range: query.Range, LocationID: uri.LocationID, SortBy: query.SortBy})
}

func (s *Service) respondOverview(c *gin.Context, req OverviewRequest) {
	resp, err := s.Overview(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to compute dashboard", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDaily handles GET /v1/daily
// Query parameters: days (7 or 7d), location_id, zero_fill, weather
func (s *Service) HandleDaily(c *gin.Context) {
	var query struct {
		Days       string `form:"days"`
		LocationID int    `form:"location_id"`
		ZeroFill   bool   `form:"zero_fill"`
		Weather    bool   `form:"weather"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	days, err := period.ParseDays(query.Days, s.opts.DailyWindowDays)
	if err != nil {
		badRequest(c, "Invalid days parameter", err)
		return
	}

	resp, err := s.Daily(c.Request.Context(), DailyRequest{
		Days:       days,
		LocationID: query.LocationID,
		ZeroFill:   query.ZeroFill,
		Weather:    query.Weather,
	})
	if err != nil {
		respondError(c, "Failed to compute daily series", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleForecast handles GET /v1/locations/:location_id/forecast
func (s *Service) HandleForecast(c *gin.Context) {
	var uri locationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "Invalid path parameters", err)
		return
	}

	resp, err := s.Forecast(c.Request.Context(), uri.LocationID)
	if err != nil {
		respondError(c, "Failed to compute forecast", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func badRequest(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   msg,
		Details:   err.Error(),
	})
}

func respondError(c *gin.Context, msg string, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		badRequest(c, "Invalid dashboard query", err)
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   msg,
		Details:   err.Error(),
	})
}
