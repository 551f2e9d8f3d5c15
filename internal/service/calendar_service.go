package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type CalendarService interface {
	List(ctx context.Context, principal security.Principal, query *dto.CalendarQueryDTO) ([]*dto.CalendarEventDTO, error)
	Get(ctx context.Context, principal security.Principal, id uint64) (*dto.CalendarEventDTO, error)
	Create(ctx context.Context, principal security.Principal, input *dto.CalendarEventInput) (*dto.CalendarEventDTO, error)
	Update(ctx context.Context, principal security.Principal, input *dto.CalendarEventInput) (*dto.CalendarEventDTO, error)
	Delete(ctx context.Context, principal security.Principal, id uint64) error
}

type calendarServiceImpl struct {
	userRepo     repository.UserRepo
	calendarRepo repository.CalendarRepo
}

func NewCalendarService(userRepo repository.UserRepo, calendarRepo repository.CalendarRepo) CalendarService {
	return &calendarServiceImpl{
		userRepo:     userRepo,
		calendarRepo: calendarRepo,
	}
}

func (s *calendarServiceImpl) List(ctx context.Context, principal security.Principal, query *dto.CalendarQueryDTO) ([]*dto.CalendarEventDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}

	var from, to *time.Time
	if query != nil {
		var err error
		if from, err = parseOptionalDate(query.From); err != nil {
			return nil, err
		}
		if to, err = parseOptionalDate(query.To); err != nil {
			return nil, err
		}
	}

	events, err := s.calendarRepo.ListByUser(ctx, principal.UserID, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CalendarEventDTO, 0, len(events))
	for _, e := range events {
		eventDTO, err := toCalendarEventDTO(e)
		if err != nil {
			return nil, err
		}
		res = append(res, eventDTO)
	}
	return res, nil
}

func (s *calendarServiceImpl) Get(ctx context.Context, principal security.Principal, id uint64) (*dto.CalendarEventDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	event, err := s.calendarRepo.GetByID(ctx, id, principal.UserID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return toCalendarEventDTO(event)
}

func (s *calendarServiceImpl) Create(ctx context.Context, principal security.Principal, input *dto.CalendarEventInput) (*dto.CalendarEventDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	event, err := buildCalendarEvent(principal.UserID, input)
	if err != nil {
		return nil, err
	}
	if err = s.calendarRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return toCalendarEventDTO(event)
}

// Update 只能更新自己的日程，其他用户的日程视为不存在
func (s *calendarServiceImpl) Update(ctx context.Context, principal security.Principal, input *dto.CalendarEventInput) (*dto.CalendarEventDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	if input.ID == 0 {
		return nil, ErrEventNotFound
	}
	event, err := buildCalendarEvent(principal.UserID, input)
	if err != nil {
		return nil, err
	}
	event.ID = input.ID

	affected, err := s.calendarRepo.Update(ctx, event)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrEventNotFound
	}

	updated, err := s.calendarRepo.GetByID(ctx, event.ID, principal.UserID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}
	return toCalendarEventDTO(updated)
}

func (s *calendarServiceImpl) Delete(ctx context.Context, principal security.Principal, id uint64) error {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return err
	}
	if id == 0 {
		return ErrEventNotFound
	}
	affected, err := s.calendarRepo.Delete(ctx, id, principal.UserID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func buildCalendarEvent(userID uint64, input *dto.CalendarEventInput) (*model.CalendarEvent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Date) == "" {
		return nil, ErrEventFieldsRequired
	}
	date, err := util.ParseDate(input.Date)
	if err != nil {
		return nil, ErrEventDateInvalid
	}
	return &model.CalendarEvent{
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		Date:        date,
	}, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := util.ParseDate(value)
	if err != nil {
		return nil, ErrEventDateInvalid
	}
	return &t, nil
}

func toCalendarEventDTO(event *model.CalendarEvent) (*dto.CalendarEventDTO, error) {
	eventDTO := &dto.CalendarEventDTO{}
	if err := copier.Copy(eventDTO, event); err != nil {
		return nil, err
	}
	return eventDTO, nil
}
