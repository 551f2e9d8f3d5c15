package main

import (
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/database/dbtest"
	"SocialDash/internal/pkg/security"
	"context"
	"testing"
	"time"
)

func TestSeederRun(t *testing.T) {
	db := dbtest.NewDB(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		if err := NewSeeder(db, now, 42).Run(ctx); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var user model.User
	if err := db.Where("email = ?", seedEmail).First(&user).Error; err != nil {
		t.Fatal(err)
	}
	if err := security.CheckPasswordHash(seedPassword, *user.Password); err != nil {
		t.Errorf("seed password mismatch: %v", err)
	}

	var users, conns, platforms int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.SocialConnection{}).Where("user_id = ? AND is_connected = ?", user.ID, true).Count(&conns)
	db.Model(&model.Platform{}).Count(&platforms)
	if users != 1 {
		t.Errorf("users = %d, want 1", users)
	}
	if conns != int64(len(consts.SupportedPlatforms)) || platforms != int64(len(consts.SupportedPlatforms)) {
		t.Errorf("connections = %d, platforms = %d", conns, platforms)
	}

	var first, last model.Stats
	db.Order("date ASC").First(&first)
	db.Order("date DESC").First(&last)
	if span := last.Date.Sub(first.Date); span < 170*24*time.Hour {
		t.Errorf("history spans %v, want about six months", span)
	}

	// 第二次执行不重复写入历史
	var stats int64
	db.Model(&model.Stats{}).Count(&stats)
	weeks := int64(0)
	for d := now.AddDate(0, -seedMonths, 0); !d.After(now); d = d.AddDate(0, 0, 7) {
		weeks++
	}
	if stats != weeks*int64(len(consts.SupportedPlatforms)) {
		t.Errorf("stats rows = %d, want %d", stats, weeks*int64(len(consts.SupportedPlatforms)))
	}
}
