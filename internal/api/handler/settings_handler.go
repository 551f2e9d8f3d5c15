package handler

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/service"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20

type SettingsHandler struct {
	userSvc service.UserService
}

func NewSettingsHandler(userSvc service.UserService) *SettingsHandler {
	return &SettingsHandler{
		userSvc: userSvc,
	}
}

func (s *SettingsHandler) ChangePassword(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var changeDTO dto.ChangePasswordDTO
	err := c.ShouldBind(&changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.ChangePassword(c.Request.Context(), principal, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SettingsHandler) UploadAvatar(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	file, err := c.FormFile("file")
	if err != nil || file == nil || file.Size > maxAvatarSize {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	avatar, err := s.userSvc.UploadAvatar(c.Request.Context(), principal, reader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, avatar)
}
