package service

import (
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/database/dbtest"
	"SocialDash/internal/pkg/redis/redistest"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/repository"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	mr             *miniredis.Miniredis
	userRepo       repository.UserRepo
	platformRepo   repository.PlatformRepo
	connectionRepo repository.SocialConnectionRepo
	calendarRepo   repository.CalendarRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.NewDB(t)
	return &testEnv{
		db:             db,
		mr:             redistest.Start(t),
		userRepo:       repository.NewUserRepo(db),
		platformRepo:   repository.NewPlatformRepo(db),
		connectionRepo: repository.NewSocialConnectionRepo(db),
		calendarRepo:   repository.NewCalendarRepo(db),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) security.Principal {
	t.Helper()
	user := &model.User{Email: email}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return security.Principal{UserID: user.ID, Email: email}
}

func (e *testEnv) connect(t *testing.T, p security.Principal, platform string) {
	t.Helper()
	conn := &model.SocialConnection{
		UserID:         p.UserID,
		Platform:       platform,
		PlatformUserID: platform + "-id",
		Username:       platform + "-user",
		IsConnected:    true,
	}
	if err := e.db.Create(conn).Error; err != nil {
		t.Fatalf("create connection: %v", err)
	}
}

func (e *testEnv) addStats(t *testing.T, platform string, date time.Time, followers int64, rate float64, growth int64) {
	t.Helper()
	p := &model.Platform{}
	if err := e.db.Where(model.Platform{Name: platform}).FirstOrCreate(p).Error; err != nil {
		t.Fatalf("platform: %v", err)
	}
	s := &model.Stats{
		PlatformID:      p.ID,
		Date:            date,
		Followers:       followers,
		EngagementRate:  rate,
		CommunityGrowth: growth,
	}
	if err := e.db.Create(s).Error; err != nil {
		t.Fatalf("stats: %v", err)
	}
}
