package handler

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformSvc service.PlatformService
}

func NewPlatformHandler(platformSvc service.PlatformService) *PlatformHandler {
	return &PlatformHandler{
		platformSvc: platformSvc,
	}
}

// GetPlatforms 已连接平台的最新粉丝数与互动率
func (s *PlatformHandler) GetPlatforms(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	summaries, err := s.platformSvc.GetPlatformSummaries(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summaries)
}

func (s *PlatformHandler) GetStats(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	data, err := s.platformSvc.GetPlatformData(c.Request.Context(), principal, c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *PlatformHandler) GetOverview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var query dto.OverviewQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}
	points, err := s.platformSvc.GetOverviewSeries(c.Request.Context(), principal, c.Param("name"), query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, points)
}

func (s *PlatformHandler) GetEngagement(c *gin.Context) {
	breakdown(c, func(ctx context.Context, p security.Principal, name string) (any, error) {
		return s.platformSvc.GetEngagement(ctx, p, name)
	})
}

func (s *PlatformHandler) GetContent(c *gin.Context) {
	breakdown(c, func(ctx context.Context, p security.Principal, name string) (any, error) {
		return s.platformSvc.GetContent(ctx, p, name)
	})
}

func (s *PlatformHandler) GetAudience(c *gin.Context) {
	breakdown(c, func(ctx context.Context, p security.Principal, name string) (any, error) {
		return s.platformSvc.GetAudience(ctx, p, name)
	})
}

func breakdown(c *gin.Context, fetch func(ctx context.Context, p security.Principal, name string) (any, error)) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	data, err := fetch(c.Request.Context(), principal, c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}
