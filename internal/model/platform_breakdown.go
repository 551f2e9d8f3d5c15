package model

type Engagement struct {
	ID         uint64  `gorm:"primaryKey"`
	PlatformID uint64  `gorm:"not null;index"`
	Type       string  `gorm:"type:varchar(50);not null"`
	Count      int64   `gorm:"not null;default:0"`
	Rate       float64 `gorm:"not null;default:0"`
}

func (Engagement) TableName() string {
	return "platform_engagement"
}

type ContentStat struct {
	ID         uint64 `gorm:"primaryKey"`
	PlatformID uint64 `gorm:"not null;index"`
	Type       string `gorm:"type:varchar(50);not null"`
	Value      int64  `gorm:"not null;default:0"`
}

func (ContentStat) TableName() string {
	return "platform_content"
}

type AudienceStat struct {
	ID         uint64  `gorm:"primaryKey"`
	PlatformID uint64  `gorm:"not null;index"`
	Category   string  `gorm:"type:varchar(50);not null"`
	Percentage float64 `gorm:"not null;default:0"`
	Change     float64 `gorm:"not null;default:0"`
}

func (AudienceStat) TableName() string {
	return "platform_audience"
}
