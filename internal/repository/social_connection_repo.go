package repository

import (
	"SocialDash/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialConnectionRepo interface {
	ListByUser(ctx context.Context, userID uint64) ([]*model.SocialConnection, error)
	ListConnectedPlatforms(ctx context.Context, userID uint64) ([]string, error)
	HasConnectedPlatform(ctx context.Context, userID uint64, platform string) (bool, error)
	Upsert(ctx context.Context, conn *model.SocialConnection) error
	DeleteByPlatformUserID(ctx context.Context, userID uint64, platformUserID string) (int64, error)
	DisconnectExpired(ctx context.Context, now time.Time) ([]uint64, error)
}

type SocialConnectionRepoImpl struct {
	db *gorm.DB
}

func NewSocialConnectionRepo(db *gorm.DB) SocialConnectionRepo {
	return &SocialConnectionRepoImpl{db: db}
}

func (s *SocialConnectionRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.SocialConnection, error) {
	conns := make([]*model.SocialConnection, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("platform ASC").
		Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

// ListConnectedPlatforms 用户已连接的平台名（去重、小写）
func (s *SocialConnectionRepoImpl) ListConnectedPlatforms(ctx context.Context, userID uint64) ([]string, error) {
	platforms := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&model.SocialConnection{}).
		Distinct("platform").
		Where("user_id = ? AND is_connected = ?", userID, true).
		Order("platform ASC").
		Pluck("platform", &platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}

func (s *SocialConnectionRepoImpl) HasConnectedPlatform(ctx context.Context, userID uint64, platform string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.SocialConnection{}).
		Where("user_id = ? AND LOWER(platform) = ? AND is_connected = ?", userID, platform, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Upsert 按 (user_id, platform) 插入或更新
func (s *SocialConnectionRepoImpl) Upsert(ctx context.Context, conn *model.SocialConnection) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"platform_user_id",
			"username",
			"access_token",
			"refresh_token",
			"token_expires_at",
			"metadata",
			"is_connected",
			"updated_at",
		}),
	}).Create(conn).Error
}

func (s *SocialConnectionRepoImpl) DeleteByPlatformUserID(ctx context.Context, userID uint64, platformUserID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform_user_id = ?", userID, platformUserID).
		Delete(&model.SocialConnection{})
	return result.RowsAffected, result.Error
}

// DisconnectExpired 将 token 已过期的连接标记为未连接，返回受影响的用户
func (s *SocialConnectionRepoImpl) DisconnectExpired(ctx context.Context, now time.Time) ([]uint64, error) {
	var userIDs []uint64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expired := tx.Model(&model.SocialConnection{}).
			Where("is_connected = ? AND token_expires_at IS NOT NULL AND token_expires_at < ?", true, now)
		if err := expired.Session(&gorm.Session{}).Distinct().Pluck("user_id", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}
		return expired.Session(&gorm.Session{}).Update("is_connected", false).Error
	})
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}
