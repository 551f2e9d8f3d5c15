package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/repository"
	"context"
	log "log/slog"
)

type PlatformService interface {
	GetPlatformData(ctx context.Context, principal security.Principal, name string) (*dto.PlatformDataDTO, error)
	GetPlatformSummaries(ctx context.Context, principal security.Principal) (map[string]dto.PlatformSummaryDTO, error)
	GetOverviewSeries(ctx context.Context, principal security.Principal, name string, limit int) ([]dto.OverviewPointDTO, error)
	GetEngagement(ctx context.Context, principal security.Principal, name string) ([]dto.EngagementDTO, error)
	GetContent(ctx context.Context, principal security.Principal, name string) ([]dto.ContentDTO, error)
	GetAudience(ctx context.Context, principal security.Principal, name string) ([]dto.AudienceDTO, error)
}

type platformServiceImpl struct {
	userRepo       repository.UserRepo
	platformRepo   repository.PlatformRepo
	connectionRepo repository.SocialConnectionRepo
}

func NewPlatformService(
	userRepo repository.UserRepo,
	platformRepo repository.PlatformRepo,
	connectionRepo repository.SocialConnectionRepo,
) PlatformService {
	return &platformServiceImpl{
		userRepo:       userRepo,
		platformRepo:   platformRepo,
		connectionRepo: connectionRepo,
	}
}

// GetPlatformData 首次访问某平台时创建该平台及一条全零统计
func (s *platformServiceImpl) GetPlatformData(ctx context.Context, principal security.Principal, name string) (*dto.PlatformDataDTO, error) {
	name, err := s.checkAccess(ctx, principal, name)
	if err != nil {
		return nil, err
	}

	platform, created, err := s.platformRepo.FindOrCreatePlatform(ctx, name)
	if err != nil {
		return nil, err
	}
	if created {
		log.InfoContext(ctx, "platform created on first access", "platform", name, "platform_id", platform.ID)
	}

	stats, err := s.platformRepo.GetLatestStats(ctx, platform.ID)
	if err != nil {
		return nil, err
	}
	return toPlatformDataDTO(stats), nil
}

func (s *platformServiceImpl) GetPlatformSummaries(ctx context.Context, principal security.Principal) (map[string]dto.PlatformSummaryDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	platforms, err := s.connectionRepo.ListConnectedPlatforms(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	latest, err := s.platformRepo.GetLatestStatsByNames(ctx, platforms)
	if err != nil {
		return nil, err
	}

	res := make(map[string]dto.PlatformSummaryDTO, len(latest))
	for name, stats := range latest {
		res[name] = dto.PlatformSummaryDTO{
			Followers:      stats.Followers,
			EngagementRate: stats.EngagementRate,
		}
	}
	return res, nil
}

func (s *platformServiceImpl) GetOverviewSeries(ctx context.Context, principal security.Principal, name string, limit int) ([]dto.OverviewPointDTO, error) {
	platform, err := s.accessiblePlatform(ctx, principal, name)
	if err != nil || platform == nil {
		return []dto.OverviewPointDTO{}, err
	}

	limit = util.ClampInt(limit, consts.DefaultOverviewSize, 1, consts.MaxOverviewSize)
	rows, err := s.platformRepo.GetRecentStats(ctx, platform.ID, limit)
	if err != nil {
		return nil, err
	}

	points := make([]dto.OverviewPointDTO, 0, len(rows))
	for _, r := range rows {
		points = append(points, dto.OverviewPointDTO{
			Date:       r.Date.Format("Jan 02"),
			Followers:  r.Followers,
			Engagement: r.EngagementRate,
		})
	}
	return points, nil
}

func (s *platformServiceImpl) GetEngagement(ctx context.Context, principal security.Principal, name string) ([]dto.EngagementDTO, error) {
	platform, err := s.accessiblePlatform(ctx, principal, name)
	if err != nil || platform == nil {
		return []dto.EngagementDTO{}, err
	}
	rows, err := s.platformRepo.GetEngagement(ctx, platform.ID)
	if err != nil {
		return nil, err
	}
	res := make([]dto.EngagementDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, dto.EngagementDTO{Type: r.Type, Count: r.Count, Rate: r.Rate})
	}
	return res, nil
}

func (s *platformServiceImpl) GetContent(ctx context.Context, principal security.Principal, name string) ([]dto.ContentDTO, error) {
	platform, err := s.accessiblePlatform(ctx, principal, name)
	if err != nil || platform == nil {
		return []dto.ContentDTO{}, err
	}
	rows, err := s.platformRepo.GetContent(ctx, platform.ID)
	if err != nil {
		return nil, err
	}
	res := make([]dto.ContentDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, dto.ContentDTO{Type: r.Type, Value: r.Value})
	}
	return res, nil
}

func (s *platformServiceImpl) GetAudience(ctx context.Context, principal security.Principal, name string) ([]dto.AudienceDTO, error) {
	platform, err := s.accessiblePlatform(ctx, principal, name)
	if err != nil || platform == nil {
		return []dto.AudienceDTO{}, err
	}
	rows, err := s.platformRepo.GetAudience(ctx, platform.ID)
	if err != nil {
		return nil, err
	}
	res := make([]dto.AudienceDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, dto.AudienceDTO{Category: r.Category, Percentage: r.Percentage, Change: r.Change})
	}
	return res, nil
}

// checkAccess 用户必须存在且连接了该平台，返回规范化后的平台名
func (s *platformServiceImpl) checkAccess(ctx context.Context, principal security.Principal, name string) (string, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return "", err
	}
	name = util.NormalizePlatform(name)
	if name == "" {
		return "", ErrParamInvalid
	}
	ok, err := s.connectionRepo.HasConnectedPlatform(ctx, principal.UserID, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrPlatformAccessDenied
	}
	return name, nil
}

// accessiblePlatform 只读视图不创建平台，平台不存在时返回 nil
func (s *platformServiceImpl) accessiblePlatform(ctx context.Context, principal security.Principal, name string) (*model.Platform, error) {
	name, err := s.checkAccess(ctx, principal, name)
	if err != nil {
		return nil, err
	}
	return s.platformRepo.GetPlatformByName(ctx, name)
}

func toPlatformDataDTO(stats *model.Stats) *dto.PlatformDataDTO {
	if stats == nil {
		return &dto.PlatformDataDTO{}
	}
	return &dto.PlatformDataDTO{
		Followers:       stats.Followers,
		EngagementRate:  stats.EngagementRate,
		TotalPosts:      stats.TotalPosts,
		HashtagReach:    stats.HashtagReach,
		Retweets:        stats.Retweets,
		Impressions:     stats.Impressions,
		PageLikes:       stats.PageLikes,
		Reach:           stats.Reach,
		CommunityGrowth: stats.CommunityGrowth,
		ContentViews:    stats.ContentViews,
		ActiveJobs:      stats.ActiveJobs,
	}
}
