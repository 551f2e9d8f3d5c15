package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/redis"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type StatsService interface {
	IngestBatch(ctx context.Context, snapshots []*dto.StatsSnapshotDTO) (int, error)
	RollForward(ctx context.Context, now time.Time) (int, error)
}

type statsServiceImpl struct {
	platformRepo repository.PlatformRepo
}

func NewStatsService(platformRepo repository.PlatformRepo) StatsService {
	return &statsServiceImpl{platformRepo: platformRepo}
}

// IngestBatch 写入一批平台统计，跳过无平台名或不支持平台的记录，返回写入条数
func (s *statsServiceImpl) IngestBatch(ctx context.Context, snapshots []*dto.StatsSnapshotDTO) (int, error) {
	platformIDs := make(map[string]uint64)
	rows := make([]*model.Stats, 0, len(snapshots))

	for _, snap := range snapshots {
		if snap == nil {
			continue
		}
		name := util.NormalizePlatform(snap.Platform)
		if name == "" {
			log.WarnContext(ctx, "stats snapshot without platform skipped")
			continue
		}
		if !util.IsSupportedPlatform(name) {
			log.WarnContext(ctx, "stats snapshot for unsupported platform skipped", "platform", snap.Platform)
			continue
		}

		id, ok := platformIDs[name]
		if !ok {
			platform, err := s.platformRepo.EnsurePlatform(ctx, name)
			if err != nil {
				return 0, fmt.Errorf("ensure platform %s: %w", name, err)
			}
			id = platform.ID
			platformIDs[name] = id
		}

		date := time.Now()
		if snap.Date != nil && !snap.Date.IsZero() {
			date = *snap.Date
		}
		rows = append(rows, &model.Stats{
			PlatformID:      id,
			Date:            date,
			Followers:       snap.Followers,
			EngagementRate:  snap.EngagementRate,
			TotalPosts:      snap.TotalPosts,
			HashtagReach:    snap.HashtagReach,
			Retweets:        snap.Retweets,
			Impressions:     snap.Impressions,
			PageLikes:       snap.PageLikes,
			Reach:           snap.Reach,
			CommunityGrowth: snap.CommunityGrowth,
			ContentViews:    snap.ContentViews,
			ActiveJobs:      snap.ActiveJobs,
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.platformRepo.CreateStatsBatch(ctx, rows); err != nil {
		return 0, err
	}
	invalidateAllDashboards(ctx)
	return len(rows), nil
}

// RollForward 对当天没有统计的平台复制最新一条，保证曲线连续
func (s *statsServiceImpl) RollForward(ctx context.Context, now time.Time) (int, error) {
	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.StatsRollForwardLock, lockValue, time.Minute*5, 3)
	if err != nil {
		return 0, err
	}
	if !lock {
		log.InfoContext(ctx, "stats roll-forward is running elsewhere, skip")
		return 0, nil
	}
	defer redis.UnLock(ctx, consts.StatsRollForwardLock, lockValue)

	rolled := 0
	defer func() {
		if rolled > 0 {
			invalidateAllDashboards(ctx)
		}
	}()

	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		return 0, err
	}

	today := util.StartOfDay(now)
	for _, p := range platforms {
		latest, err := s.platformRepo.GetLatestStats(ctx, p.ID)
		if err != nil {
			return rolled, err
		}
		if latest == nil || !latest.Date.Before(today) {
			continue
		}

		next := *latest
		next.ID = 0
		next.Date = today
		next.CreatedAt = time.Time{}
		if err = s.platformRepo.CreateStats(ctx, &next); err != nil {
			return rolled, err
		}
		rolled++
	}
	return rolled, nil
}
