package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/security"
	"context"
	"errors"
	"testing"
	"time"
)

func newDashboardForTest(env *testEnv, now time.Time) *dashboardServiceImpl {
	svc := NewDashboardService(env.userRepo, env.platformRepo, env.connectionRepo).(*dashboardServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDashboardEmpty(t *testing.T) {
	env := newTestEnv(t)
	p := env.createUser(t, "a@example.com")
	svc := newDashboardForTest(env, time.Now())

	got, err := svc.GetDashboard(context.Background(), p, 0)
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}
	if got.Overview.TotalFollowers != 0 || got.Overview.AvgEngagement != "0" || got.Overview.GrowthRate != "+0%" {
		t.Errorf("overview = %+v", got.Overview)
	}
	if got.Overview.AIInsights != 0 {
		t.Errorf("aiInsights = %d", got.Overview.AIInsights)
	}
	if len(got.PlatformStats) != 0 {
		t.Errorf("platformStats = %+v", got.PlatformStats)
	}
	if len(got.GrowthData) != 6 {
		t.Fatalf("growthData len = %d, want 6", len(got.GrowthData))
	}
	for _, point := range got.GrowthData {
		for _, name := range []string{"instagram", "twitter", "facebook", "linkedin"} {
			if v, ok := point.Values[name]; !ok || v != 0 {
				t.Errorf("%s %s = %d (present=%v)", point.Name, name, v, ok)
			}
		}
	}
}

func TestDashboardAggregates(t *testing.T) {
	env := newTestEnv(t)
	p := env.createUser(t, "a@example.com")
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	env.connect(t, p, "instagram")
	env.connect(t, p, "twitter")
	env.addStats(t, "instagram", time.Date(2024, time.May, 28, 12, 0, 0, 0, time.UTC), 900, 3.0, 5)
	env.addStats(t, "instagram", now, 1000, 4.2, 10)
	env.addStats(t, "twitter", now, 2000, 2.8, 20)
	// 未连接的平台不计入汇总，但出现在增长曲线中
	env.addStats(t, "facebook", now, 5000, 9.9, 99)

	svc := newDashboardForTest(env, now)
	got, err := svc.GetDashboard(context.Background(), p, 2)
	if err != nil {
		t.Fatal(err)
	}

	if got.Overview.TotalFollowers != 3000 {
		t.Errorf("totalFollowers = %d, want 3000", got.Overview.TotalFollowers)
	}
	if got.Overview.GrowthRate != "+1.0%" {
		t.Errorf("growthRate = %q, want +1.0%%", got.Overview.GrowthRate)
	}
	if got.Overview.AvgEngagement != "3.5" {
		t.Errorf("avgEngagement = %q, want 3.5", got.Overview.AvgEngagement)
	}

	want := []dto.PlatformStatDTO{
		{Platform: "instagram", Followers: 1000, Engagement: "4.2", Growth: 10},
		{Platform: "twitter", Followers: 2000, Engagement: "2.8", Growth: 20},
	}
	if len(got.PlatformStats) != len(want) {
		t.Fatalf("platformStats = %+v", got.PlatformStats)
	}
	for i := range want {
		if got.PlatformStats[i] != want[i] {
			t.Errorf("platformStats[%d] = %+v, want %+v", i, got.PlatformStats[i], want[i])
		}
	}

	if len(got.GrowthData) != 2 {
		t.Fatalf("growthData len = %d", len(got.GrowthData))
	}
	may, jun := got.GrowthData[0], got.GrowthData[1]
	if may.Name != "May" || may.Values["instagram"] != 900 {
		t.Errorf("May = %+v", may)
	}
	if jun.Name != "Jun" || jun.Values["instagram"] != 1000 || jun.Values["facebook"] != 5000 || jun.Values["linkedin"] != 0 {
		t.Errorf("Jun = %+v", jun)
	}
}

func TestDashboardCacheDroppedOnConnect(t *testing.T) {
	env := newTestEnv(t)
	p := env.createUser(t, "a@example.com")
	ctx := context.Background()
	dashboard := newDashboardForTest(env, time.Now())
	social := NewSocialService(env.userRepo, env.connectionRepo, nil)

	if _, err := dashboard.GetDashboard(ctx, p, 6); err != nil {
		t.Fatal(err)
	}
	if !env.mr.Exists(dashboardCacheKey(p.UserID, 6)) {
		t.Fatal("dashboard was not cached")
	}

	_, err := social.Connect(ctx, p, &dto.ConnectDTO{
		Platform:       "twitter",
		AccessToken:    "tok",
		PlatformUserID: "tw-1",
		Username:       "someone",
	})
	if err != nil {
		t.Fatal(err)
	}
	if env.mr.Exists(dashboardCacheKey(p.UserID, 6)) {
		t.Error("cache survived connect")
	}

	got, err := dashboard.GetDashboard(ctx, p, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.PlatformStats) != 1 || got.PlatformStats[0].Platform != "twitter" {
		t.Errorf("platformStats = %+v", got.PlatformStats)
	}
}

func TestDashboardCacheExpiresPerMonths(t *testing.T) {
	env := newTestEnv(t)
	p := env.createUser(t, "a@example.com")
	ctx := context.Background()
	now := time.Now()
	env.connect(t, p, "twitter")
	env.addStats(t, "twitter", now.Add(-time.Hour), 1000, 1.0, 0)
	svc := newDashboardForTest(env, now)

	if _, err := svc.GetDashboard(ctx, p, 6); err != nil {
		t.Fatal(err)
	}
	// 绕过服务直接写库，缓存不会被主动清除
	env.addStats(t, "twitter", now, 5000, 1.0, 0)

	env.mr.FastForward(4 * time.Minute)
	got, err := svc.GetDashboard(ctx, p, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got.Overview.TotalFollowers != 1000 {
		t.Errorf("within ttl totalFollowers = %d, want cached 1000", got.Overview.TotalFollowers)
	}

	// 其他 months 的写入不能延长已有缓存
	if _, err = svc.GetDashboard(ctx, p, 7); err != nil {
		t.Fatal(err)
	}
	env.mr.FastForward(2 * time.Minute)
	got, err = svc.GetDashboard(ctx, p, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got.Overview.TotalFollowers != 5000 {
		t.Errorf("after ttl totalFollowers = %d, want 5000", got.Overview.TotalFollowers)
	}
}

func TestDashboardCacheDroppedOnStatsChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()
	alice := env.createUser(t, "a@example.com")
	bob := env.createUser(t, "b@example.com")
	env.connect(t, alice, "twitter")
	env.connect(t, bob, "twitter")
	dashboard := newDashboardForTest(env, now)
	stats := NewStatsService(env.platformRepo)

	for _, p := range []security.Principal{alice, bob} {
		if _, err := dashboard.GetDashboard(ctx, p, 6); err != nil {
			t.Fatal(err)
		}
	}

	n, err := stats.IngestBatch(ctx, []*dto.StatsSnapshotDTO{{Platform: "twitter", Date: &now, Followers: 42}})
	if err != nil || n != 1 {
		t.Fatalf("IngestBatch() = %d, %v", n, err)
	}
	for _, p := range []security.Principal{alice, bob} {
		if env.mr.Exists(dashboardCacheKey(p.UserID, 6)) {
			t.Errorf("user %d cache survived ingestion", p.UserID)
		}
		got, err := dashboard.GetDashboard(ctx, p, 6)
		if err != nil {
			t.Fatal(err)
		}
		if got.Overview.TotalFollowers != 42 {
			t.Errorf("user %d totalFollowers = %d, want 42", p.UserID, got.Overview.TotalFollowers)
		}
	}
}

func TestDashboardCacheDroppedOnExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()
	p := env.createUser(t, "a@example.com")
	other := env.createUser(t, "b@example.com")
	dashboard := newDashboardForTest(env, now)
	social := NewSocialService(env.userRepo, env.connectionRepo, nil)

	expires := now.Add(time.Minute)
	if _, err := social.Connect(ctx, p, &dto.ConnectDTO{
		Platform: "twitter", AccessToken: "tok", PlatformUserID: "tw-1", Username: "u", ExpiresAt: &expires,
	}); err != nil {
		t.Fatal(err)
	}
	env.addStats(t, "twitter", now, 300, 1.0, 0)
	for _, u := range []security.Principal{p, other} {
		if _, err := dashboard.GetDashboard(ctx, u, 6); err != nil {
			t.Fatal(err)
		}
	}

	n, err := social.ExpireConnections(ctx, now.Add(time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("ExpireConnections() = %d, %v", n, err)
	}
	if env.mr.Exists(dashboardCacheKey(p.UserID, 6)) {
		t.Error("cache survived connection expiry")
	}
	if !env.mr.Exists(dashboardCacheKey(other.UserID, 6)) {
		t.Error("unaffected user's cache dropped")
	}

	got, err := dashboard.GetDashboard(ctx, p, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.PlatformStats) != 0 || got.Overview.TotalFollowers != 0 {
		t.Errorf("dashboard after expiry = %+v", got)
	}
}

func TestDashboardCacheFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	p := env.createUser(t, "a@example.com")
	svc := newDashboardForTest(env, time.Now())
	env.mr.SetError("READONLY simulated failure")

	if _, err := svc.GetDashboard(context.Background(), p, 6); err != nil {
		t.Errorf("GetDashboard() error = %v, want cache failure ignored", err)
	}
}

func TestDashboardUserMissing(t *testing.T) {
	env := newTestEnv(t)
	p := env.createUser(t, "a@example.com")
	env.db.Delete(&model.User{}, p.UserID)
	svc := newDashboardForTest(env, time.Now())

	if _, err := svc.GetDashboard(context.Background(), p, 6); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
