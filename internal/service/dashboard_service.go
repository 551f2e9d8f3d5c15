package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/pkg/analytics"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/redis"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const dashboardCacheTTL = 5 * time.Minute

type DashboardService interface {
	GetDashboard(ctx context.Context, principal security.Principal, months int) (*dto.DashboardDTO, error)
	GetGrowthSeries(ctx context.Context, principal security.Principal, months int) ([]analytics.GrowthPoint, error)
}

type dashboardServiceImpl struct {
	userRepo       repository.UserRepo
	platformRepo   repository.PlatformRepo
	connectionRepo repository.SocialConnectionRepo
	now            func() time.Time
}

func NewDashboardService(
	userRepo repository.UserRepo,
	platformRepo repository.PlatformRepo,
	connectionRepo repository.SocialConnectionRepo,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:       userRepo,
		platformRepo:   platformRepo,
		connectionRepo: connectionRepo,
		now:            time.Now,
	}
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, principal security.Principal, months int) (*dto.DashboardDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	months = util.ClampInt(months, consts.DefaultGrowthMonths, 1, consts.MaxGrowthMonths)

	key := dashboardCacheKey(principal.UserID, months)
	if cached := s.readCache(ctx, key); cached != nil {
		return cached, nil
	}

	platforms, err := s.connectionRepo.ListConnectedPlatforms(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	latest, err := s.platformRepo.GetLatestStatsByNames(ctx, platforms)
	if err != nil {
		return nil, err
	}

	snapshots := make([]analytics.PlatformSnapshot, 0, len(platforms))
	platformStats := make([]dto.PlatformStatDTO, 0, len(platforms))
	for _, name := range platforms {
		snapshot := analytics.PlatformSnapshot{Platform: name}
		if stats, ok := latest[name]; ok {
			snapshot.Followers = stats.Followers
			snapshot.EngagementRate = stats.EngagementRate
			snapshot.Growth = stats.CommunityGrowth
		}
		snapshots = append(snapshots, snapshot)
		platformStats = append(platformStats, dto.PlatformStatDTO{
			Platform:   name,
			Followers:  snapshot.Followers,
			Engagement: analytics.FormatEngagement(snapshot.EngagementRate),
			Growth:     snapshot.Growth,
		})
	}

	growth, err := s.growthSeries(ctx, months)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.DashboardDTO{
		Overview:      analytics.Summarize(snapshots),
		PlatformStats: platformStats,
		GrowthData:    growth,
	}
	s.writeCache(ctx, key, dashboard)
	return dashboard, nil
}

func (s *dashboardServiceImpl) GetGrowthSeries(ctx context.Context, principal security.Principal, months int) ([]analytics.GrowthPoint, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	months = util.ClampInt(months, consts.DefaultGrowthMonths, 1, consts.MaxGrowthMonths)
	return s.growthSeries(ctx, months)
}

// growthSeries 固定展示全部支持的平台，与用户是否连接无关
func (s *dashboardServiceImpl) growthSeries(ctx context.Context, months int) ([]analytics.GrowthPoint, error) {
	history, err := s.platformRepo.GetStatsHistoryByNames(ctx, consts.SupportedPlatforms)
	if err != nil {
		return nil, err
	}

	histories := make(map[string][]analytics.Snapshot, len(history))
	for name, rows := range history {
		snaps := make([]analytics.Snapshot, 0, len(rows))
		for _, r := range rows {
			snaps = append(snaps, analytics.Snapshot{Date: r.Date, Followers: r.Followers})
		}
		histories[name] = snaps
	}

	periods := analytics.MonthPeriods(s.now(), months)
	return analytics.GrowthSeries(periods, histories, consts.SupportedPlatforms), nil
}

// 缓存读写失败只记录日志，不影响请求
func (s *dashboardServiceImpl) readCache(ctx context.Context, key string) *dto.DashboardDTO {
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "dashboard cache read failed", "key", key, "err", err)
		return nil
	}
	if value == "" {
		return nil
	}
	var dashboard dto.DashboardDTO
	if err = json.Unmarshal([]byte(value), &dashboard); err != nil {
		log.WarnContext(ctx, "dashboard cache decode failed", "key", key, "err", err)
		return nil
	}
	return &dashboard
}

// writeCache 每个 months 取值独立一个键，各自过期
func (s *dashboardServiceImpl) writeCache(ctx context.Context, key string, dashboard *dto.DashboardDTO) {
	b, err := json.Marshal(dashboard)
	if err != nil {
		log.WarnContext(ctx, "dashboard cache encode failed", "key", key, "err", err)
		return
	}
	if err = redis.SetWithExpiration(ctx, key, string(b), dashboardCacheTTL); err != nil {
		log.WarnContext(ctx, "dashboard cache write failed", "key", key, "err", err)
	}
}

// invalidateDashboard 连接变化后丢弃该用户的看板缓存
func invalidateDashboard(ctx context.Context, userIDs ...uint64) {
	for _, userID := range userIDs {
		pattern := consts.DashboardCacheKey + strconv.FormatUint(userID, 10) + ":*"
		if _, err := redis.DeleteByPattern(ctx, pattern); err != nil {
			log.WarnContext(ctx, "dashboard cache invalidate failed", "user_id", userID, "err", err)
		}
	}
}

// invalidateAllDashboards 统计数据变化影响所有用户的看板
func invalidateAllDashboards(ctx context.Context) {
	if _, err := redis.DeleteByPattern(ctx, consts.DashboardCacheKey+"*"); err != nil {
		log.WarnContext(ctx, "dashboard cache invalidate failed", "err", err)
	}
}

func dashboardCacheKey(userID uint64, months int) string {
	return consts.DashboardCacheKey + strconv.FormatUint(userID, 10) + ":" + strconv.Itoa(months)
}
