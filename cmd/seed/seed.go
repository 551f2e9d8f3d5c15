package main

import (
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/repository"
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	seedEmail    = "test@example.com"
	seedPassword = "password123"
	seedName     = "Test User"
	seedMonths   = 6
)

var baseFollowers = map[string]int64{
	consts.PlatformInstagram: 12000,
	consts.PlatformTwitter:   8000,
	consts.PlatformFacebook:  15000,
	consts.PlatformLinkedIn:  4000,
}

// Seeder 写入演示账号、社交连接与近半年的平台统计，可重复执行
type Seeder struct {
	db             *gorm.DB
	userRepo       repository.UserRepo
	platformRepo   repository.PlatformRepo
	connectionRepo repository.SocialConnectionRepo
	rng            *rand.Rand
	now            time.Time
}

func NewSeeder(db *gorm.DB, now time.Time, seed uint64) *Seeder {
	return &Seeder{
		db:             db,
		userRepo:       repository.NewUserRepo(db),
		platformRepo:   repository.NewPlatformRepo(db),
		connectionRepo: repository.NewSocialConnectionRepo(db),
		rng:            rand.New(rand.NewPCG(seed, seed^0x5eed)),
		now:            now,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	user, err := s.seedUser(ctx)
	if err != nil {
		return err
	}
	for _, name := range consts.SupportedPlatforms {
		if err = s.seedConnection(ctx, user.ID, name); err != nil {
			return err
		}
		if err = s.seedPlatform(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedUser(ctx context.Context) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, seedEmail)
	if err != nil || user != nil {
		return user, err
	}

	hash, err := security.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}
	name := seedName
	user = &model.User{Name: &name, Email: seedEmail, Password: &hash}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

func (s *Seeder) seedConnection(ctx context.Context, userID uint64, platform string) error {
	metadata, err := json.Marshal(map[string]any{
		"bio":      "Demo " + platform + " account",
		"lastSync": s.now.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	expiresAt := s.now.AddDate(0, 6, 0)
	return s.connectionRepo.Upsert(ctx, &model.SocialConnection{
		UserID:         userID,
		Platform:       platform,
		PlatformUserID: platform + "_" + uuid.NewString()[:8],
		Username:       "demo_" + platform,
		AccessToken:    uuid.NewString(),
		RefreshToken:   uuid.NewString(),
		TokenExpiresAt: &expiresAt,
		Metadata:       datatypes.JSON(metadata),
		IsConnected:    true,
	})
}

// seedPlatform 已有统计的平台不再写入历史
func (s *Seeder) seedPlatform(ctx context.Context, name string) error {
	platform, err := s.platformRepo.EnsurePlatform(ctx, name)
	if err != nil {
		return err
	}
	latest, err := s.platformRepo.GetLatestStats(ctx, platform.ID)
	if err != nil || latest != nil {
		return err
	}

	if err = s.platformRepo.CreateStatsBatch(ctx, s.history(platform.ID, name)); err != nil {
		return fmt.Errorf("seed stats for %s: %w", name, err)
	}
	return s.seedBreakdowns(ctx, platform.ID)
}

// history 每周一条，粉丝数单调增长
func (s *Seeder) history(platformID uint64, name string) []*model.Stats {
	start := s.now.AddDate(0, -seedMonths, 0)
	followers := baseFollowers[name]
	rows := make([]*model.Stats, 0, seedMonths*5)
	for day := start; !day.After(s.now); day = day.AddDate(0, 0, 7) {
		growth := int64(s.rng.IntN(400)) + 50
		followers += growth
		rows = append(rows, &model.Stats{
			PlatformID:      platformID,
			Date:            day,
			Followers:       followers,
			EngagementRate:  float64(s.rng.IntN(60)+10) / 10,
			TotalPosts:      int64(s.rng.IntN(20) + 5),
			HashtagReach:    int64(s.rng.IntN(5000)),
			Retweets:        int64(s.rng.IntN(300)),
			Impressions:     followers * int64(s.rng.IntN(4)+2),
			PageLikes:       followers / 2,
			Reach:           followers * 3 / 2,
			CommunityGrowth: growth,
			ContentViews:    int64(s.rng.IntN(20000)),
			ActiveJobs:      int64(s.rng.IntN(10)),
		})
	}
	return rows
}

func (s *Seeder) seedBreakdowns(ctx context.Context, platformID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		engagement := []*model.Engagement{
			{PlatformID: platformID, Type: "likes", Count: int64(s.rng.IntN(5000) + 1000), Rate: 4.2},
			{PlatformID: platformID, Type: "comments", Count: int64(s.rng.IntN(800) + 100), Rate: 1.1},
			{PlatformID: platformID, Type: "shares", Count: int64(s.rng.IntN(400) + 50), Rate: 0.6},
		}
		if err := tx.Create(engagement).Error; err != nil {
			return err
		}
		content := []*model.ContentStat{
			{PlatformID: platformID, Type: "images", Value: int64(s.rng.IntN(60) + 20)},
			{PlatformID: platformID, Type: "videos", Value: int64(s.rng.IntN(30) + 5)},
			{PlatformID: platformID, Type: "text", Value: int64(s.rng.IntN(40) + 10)},
		}
		if err := tx.Create(content).Error; err != nil {
			return err
		}
		audience := []*model.AudienceStat{
			{PlatformID: platformID, Category: "18-24", Percentage: 28.5, Change: 1.2},
			{PlatformID: platformID, Category: "25-34", Percentage: 41.0, Change: 0.4},
			{PlatformID: platformID, Category: "35-44", Percentage: 19.5, Change: -0.8},
			{PlatformID: platformID, Category: "45+", Percentage: 11.0, Change: -0.3},
		}
		return tx.Create(audience).Error
	})
}
