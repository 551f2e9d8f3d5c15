package model

import "time"

// Platform 被追踪的社交网络，Name 统一小写
type Platform struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_platform_name"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Stats      []Stats        `gorm:"foreignKey:PlatformID;references:ID"`
	Engagement []Engagement   `gorm:"foreignKey:PlatformID;references:ID"`
	Content    []ContentStat  `gorm:"foreignKey:PlatformID;references:ID"`
	Audience   []AudienceStat `gorm:"foreignKey:PlatformID;references:ID"`
}

func (Platform) TableName() string {
	return "platforms"
}
