package model

import "time"

// Stats is one dated snapshot of a platform's counters. The newest row by
// Date is the platform's current state.
type Stats struct {
	ID              uint64    `gorm:"primaryKey"`
	PlatformID      uint64    `gorm:"not null;index:idx_platform_date,priority:1"`
	Date            time.Time `gorm:"not null;index:idx_platform_date,priority:2"`
	Followers       int64     `gorm:"not null;default:0"`
	EngagementRate  float64   `gorm:"not null;default:0"`
	TotalPosts      int64     `gorm:"not null;default:0"`
	HashtagReach    int64     `gorm:"not null;default:0"`
	Retweets        int64     `gorm:"not null;default:0"`
	Impressions     int64     `gorm:"not null;default:0"`
	PageLikes       int64     `gorm:"not null;default:0"`
	Reach           int64     `gorm:"not null;default:0"`
	CommunityGrowth int64     `gorm:"not null;default:0"`
	ContentViews    int64     `gorm:"not null;default:0"`
	ActiveJobs      int64     `gorm:"not null;default:0"`
	CreatedAt       time.Time
}

func (Stats) TableName() string {
	return "stats"
}
