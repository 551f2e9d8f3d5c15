package handler

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/analytics"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/service"
	"bytes"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// GetDashboard GET /api/dashboard?months=N
func (s *DashboardHandler) GetDashboard(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	query, ok := bindDashboardQuery(c)
	if !ok {
		return
	}
	dashboard, err := s.dashboardSvc.GetDashboard(c.Request.Context(), principal, query.Months)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboard)
}

// GetGrowthChart GET /api/dashboard/growth-chart.png?months=N
func (s *DashboardHandler) GetGrowthChart(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	query, ok := bindDashboardQuery(c)
	if !ok {
		return
	}
	points, err := s.dashboardSvc.GetGrowthSeries(c.Request.Context(), principal, query.Months)
	if err != nil {
		response.Error(c, err)
		return
	}

	var buf bytes.Buffer
	if err = analytics.RenderGrowthChart(&buf, points, consts.SupportedPlatforms); err != nil {
		log.ErrorContext(c.Request.Context(), "growth chart render failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func bindDashboardQuery(c *gin.Context) (*dto.DashboardQueryDTO, bool) {
	var query dto.DashboardQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return nil, false
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return nil, false
	}
	return &query, true
}
