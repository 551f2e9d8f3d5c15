package handler

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/api/middleware"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarSvc service.CalendarService
}

func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarSvc: calendarSvc,
	}
}

func (s *CalendarHandler) ListEvents(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var query dto.CalendarQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	events, err := s.calendarSvc.List(c.Request.Context(), principal, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, events)
}

func (s *CalendarHandler) GetEvent(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	event, err := s.calendarSvc.Get(c.Request.Context(), principal, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

func (s *CalendarHandler) CreateEvent(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var input dto.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}
	event, err := s.calendarSvc.Create(c.Request.Context(), principal, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

// UpdateEvent id 取路径参数，其次取 body
func (s *CalendarHandler) UpdateEvent(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var input dto.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}
	id, ok := eventID(c, input.ID)
	if !ok {
		return
	}
	input.ID = id
	event, err := s.calendarSvc.Update(c.Request.Context(), principal, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

// DeleteEvent id 取路径参数，其次取 body
func (s *CalendarHandler) DeleteEvent(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	var bodyID uint64
	if c.Param("id") == "" {
		var deleteDTO dto.CalendarDeleteDTO
		if err := c.ShouldBindJSON(&deleteDTO); err != nil {
			response.Error(c, err)
			return
		}
		bodyID = deleteDTO.ID
	}
	id, ok := eventID(c, bodyID)
	if !ok {
		return
	}
	if err := s.calendarSvc.Delete(c.Request.Context(), principal, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func eventID(c *gin.Context, bodyID uint64) (uint64, bool) {
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
			return 0, false
		}
		return id, true
	}
	if bodyID == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return bodyID, true
}
