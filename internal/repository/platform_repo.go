package repository

import (
	"SocialDash/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlatformRepo interface {
	GetPlatformByName(ctx context.Context, name string) (*model.Platform, error)
	FindOrCreatePlatform(ctx context.Context, name string) (*model.Platform, bool, error)
	EnsurePlatform(ctx context.Context, name string) (*model.Platform, error)
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	GetLatestStats(ctx context.Context, platformID uint64) (*model.Stats, error)
	GetLatestStatsByNames(ctx context.Context, names []string) (map[string]*model.Stats, error)
	GetStatsHistoryByNames(ctx context.Context, names []string) (map[string][]*model.Stats, error)
	GetRecentStats(ctx context.Context, platformID uint64, limit int) ([]*model.Stats, error)
	CreateStats(ctx context.Context, stats *model.Stats) error
	CreateStatsBatch(ctx context.Context, stats []*model.Stats) error
	GetEngagement(ctx context.Context, platformID uint64) ([]*model.Engagement, error)
	GetContent(ctx context.Context, platformID uint64) ([]*model.ContentStat, error)
	GetAudience(ctx context.Context, platformID uint64) ([]*model.AudienceStat, error)
}

type PlatformRepoImpl struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) PlatformRepo {
	return &PlatformRepoImpl{db: db}
}

func (s *PlatformRepoImpl) GetPlatformByName(ctx context.Context, name string) (*model.Platform, error) {
	return getPlatformByName(s.db.WithContext(ctx), name)
}

// FindOrCreatePlatform 首次访问时创建平台及一条全零统计，返回是否发生了创建
func (s *PlatformRepoImpl) FindOrCreatePlatform(ctx context.Context, name string) (*model.Platform, bool, error) {
	return s.findOrCreate(ctx, name, true)
}

// EnsurePlatform 平台不存在时创建，不写入统计
func (s *PlatformRepoImpl) EnsurePlatform(ctx context.Context, name string) (*model.Platform, error) {
	platform, _, err := s.findOrCreate(ctx, name, false)
	return platform, err
}

func (s *PlatformRepoImpl) findOrCreate(ctx context.Context, name string, withZeroStats bool) (*model.Platform, bool, error) {
	platform, err := s.GetPlatformByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if platform != nil {
		return platform, false, nil
	}

	created := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newPlatform := &model.Platform{Name: name}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(newPlatform)
		if result.Error != nil {
			return result.Error
		}

		// 并发首访时另一方已写入，重新读取
		if result.RowsAffected == 0 {
			platform, err = getPlatformByName(tx, name)
			if err != nil {
				return err
			}
			if platform == nil {
				return fmt.Errorf("platform %q vanished after conflict", name)
			}
			return nil
		}

		if withZeroStats {
			zero := &model.Stats{
				PlatformID: newPlatform.ID,
				Date:       time.Now(),
			}
			if err := tx.Create(zero).Error; err != nil {
				return err
			}
		}
		platform = newPlatform
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return platform, created, nil
}

func (s *PlatformRepoImpl) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	platforms := make([]*model.Platform, 0)
	err := s.db.WithContext(ctx).Order("name ASC").Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}

func (s *PlatformRepoImpl) GetLatestStats(ctx context.Context, platformID uint64) (*model.Stats, error) {
	stats := &model.Stats{}
	result := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("date DESC").
		Order("id DESC").
		First(stats)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return stats, nil
}

// GetLatestStatsByNames 按平台名返回最新统计，不存在的平台或无统计的平台不在结果中
func (s *PlatformRepoImpl) GetLatestStatsByNames(ctx context.Context, names []string) (map[string]*model.Stats, error) {
	res := make(map[string]*model.Stats, len(names))
	if len(names) == 0 {
		return res, nil
	}

	platforms := make([]*model.Platform, 0, len(names))
	if err := s.db.WithContext(ctx).Where("name IN ?", names).Find(&platforms).Error; err != nil {
		return nil, err
	}

	for _, p := range platforms {
		stats, err := s.GetLatestStats(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if stats != nil {
			res[p.Name] = stats
		}
	}
	return res, nil
}

// GetStatsHistoryByNames 按平台名返回按日期升序的粉丝历史
func (s *PlatformRepoImpl) GetStatsHistoryByNames(ctx context.Context, names []string) (map[string][]*model.Stats, error) {
	res := make(map[string][]*model.Stats, len(names))
	if len(names) == 0 {
		return res, nil
	}

	type row struct {
		Name      string
		Date      time.Time
		Followers int64
	}
	rows := make([]row, 0)
	err := s.db.WithContext(ctx).
		Table("stats").
		Select("platforms.name AS name, stats.date AS date, stats.followers AS followers").
		Joins("JOIN platforms ON platforms.id = stats.platform_id").
		Where("platforms.name IN ?", names).
		Order("stats.date ASC").
		Order("stats.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		res[r.Name] = append(res[r.Name], &model.Stats{Date: r.Date, Followers: r.Followers})
	}
	return res, nil
}

// GetRecentStats 取最近 limit 条统计，按日期升序返回
func (s *PlatformRepoImpl) GetRecentStats(ctx context.Context, platformID uint64, limit int) ([]*model.Stats, error) {
	stats := make([]*model.Stats, 0, limit)
	err := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("date DESC").
		Order("id DESC").
		Limit(limit).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

func (s *PlatformRepoImpl) CreateStats(ctx context.Context, stats *model.Stats) error {
	return s.db.WithContext(ctx).Create(stats).Error
}

func (s *PlatformRepoImpl) CreateStatsBatch(ctx context.Context, stats []*model.Stats) error {
	if len(stats) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(stats, 100).Error
}

func (s *PlatformRepoImpl) GetEngagement(ctx context.Context, platformID uint64) ([]*model.Engagement, error) {
	rows := make([]*model.Engagement, 0)
	err := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("count DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PlatformRepoImpl) GetContent(ctx context.Context, platformID uint64) ([]*model.ContentStat, error) {
	rows := make([]*model.ContentStat, 0)
	err := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("value DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PlatformRepoImpl) GetAudience(ctx context.Context, platformID uint64) ([]*model.AudienceStat, error) {
	rows := make([]*model.AudienceStat, 0)
	err := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("percentage DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func getPlatformByName(db *gorm.DB, name string) (*model.Platform, error) {
	platform := &model.Platform{}
	result := db.Where("name = ?", name).First(platform)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return platform, nil
}
