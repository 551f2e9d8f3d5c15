package handler

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc      service.UserService
	secureCookie bool
}

// NewAuthHandler secureCookie 为 true 时 cookie 仅通过 HTTPS 发送
func NewAuthHandler(userSvc service.UserService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		userSvc:      userSvc,
		secureCookie: secureCookie,
	}
}

func (s *AuthHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	err := c.ShouldBind(&signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.Signup(c.Request.Context(), &signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *AuthHandler) Signin(c *gin.Context) {
	var signinDTO dto.SigninDTO
	err := c.ShouldBind(&signinDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&signinDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Signin(c.Request.Context(), &signinDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(security.TokenTTL().Seconds())
	}
	s.setCookie(c, consts.TokenCookieName, result.Token, maxAge)
	response.Success(c, result)
}

// Signout 登录态可选，token 无效时也会清理 cookie
func (s *AuthHandler) Signout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" {
		if err := s.userSvc.Signout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}

	s.setCookie(c, consts.TokenCookieName, "", -1)
	for _, name := range consts.LegacySessionCookies {
		s.setCookie(c, name, "", -1)
	}
	response.Success(c, nil)
}

func (s *AuthHandler) Session(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	session, err := s.userSvc.GetSession(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

func (s *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.secureCookie, true)
}
