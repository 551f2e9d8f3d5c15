package handler

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/service"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialSvc service.SocialService
}

func NewSocialHandler(socialSvc service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialSvc: socialSvc,
	}
}

func (s *SocialHandler) GetAccounts(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	accounts, err := s.socialSvc.ListAccounts(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accounts)
}

func (s *SocialHandler) Connect(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var connectDTO dto.ConnectDTO
	if err := c.ShouldBindJSON(&connectDTO); err != nil {
		response.Error(c, err)
		return
	}
	account, err := s.socialSvc.Connect(c.Request.Context(), principal, &connectDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, account)
}

func (s *SocialHandler) Disconnect(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var disconnectDTO dto.DisconnectDTO
	if err := c.ShouldBindJSON(&disconnectDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.socialSvc.Disconnect(c.Request.Context(), principal, &disconnectDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetOAuthURL 生成授权地址，state 暂存于 Redis
func (s *SocialHandler) GetOAuthURL(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	res, err := s.socialSvc.AuthorizeURL(c.Request.Context(), principal, c.Param("platform"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// OAuthCallback 不做真正的 token 交换，只记录占位连接
func (s *SocialHandler) OAuthCallback(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var callbackDTO dto.OAuthCallbackDTO
	if err := c.ShouldBindQuery(&callbackDTO); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err := util.ValidateDTO(&callbackDTO); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	account, err := s.socialSvc.Callback(c.Request.Context(), principal, c.Param("platform"), &callbackDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, account)
}
