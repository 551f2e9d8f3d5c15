package repository

import (
	"SocialDash/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CalendarRepo interface {
	ListByUser(ctx context.Context, userID uint64, from, to *time.Time) ([]*model.CalendarEvent, error)
	GetByID(ctx context.Context, id, userID uint64) (*model.CalendarEvent, error)
	Create(ctx context.Context, event *model.CalendarEvent) error
	Update(ctx context.Context, event *model.CalendarEvent) (int64, error)
	Delete(ctx context.Context, id, userID uint64) (int64, error)
}

type CalendarRepoImpl struct {
	db *gorm.DB
}

func NewCalendarRepo(db *gorm.DB) CalendarRepo {
	return &CalendarRepoImpl{db: db}
}

func (s *CalendarRepoImpl) ListByUser(ctx context.Context, userID uint64, from, to *time.Time) ([]*model.CalendarEvent, error) {
	events := make([]*model.CalendarEvent, 0)
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}
	err := query.Order("date ASC").Order("id ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *CalendarRepoImpl) GetByID(ctx context.Context, id, userID uint64) (*model.CalendarEvent, error) {
	event := &model.CalendarEvent{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(event)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return event, nil
}

func (s *CalendarRepoImpl) Create(ctx context.Context, event *model.CalendarEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// Update 仅更新属于 event.UserID 的记录，返回受影响行数
func (s *CalendarRepoImpl) Update(ctx context.Context, event *model.CalendarEvent) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.CalendarEvent{}).
		Where("id = ? AND user_id = ?", event.ID, event.UserID).
		Updates(map[string]interface{}{
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"updated_at":  time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (s *CalendarRepoImpl) Delete(ctx context.Context, id, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CalendarEvent{})
	return result.RowsAffected, result.Error
}
