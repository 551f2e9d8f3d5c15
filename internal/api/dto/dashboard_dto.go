package dto

import "SocialDash/internal/pkg/analytics"

type DashboardQueryDTO struct {
	Months int `form:"months" validate:"omitempty,min=1,max=24"`
}

type PlatformStatDTO struct {
	Platform   string `json:"platform"`
	Followers  int64  `json:"followers"`
	Engagement string `json:"engagement"`
	Growth     int64  `json:"growth"`
}

// DashboardDTO 看板数据
type DashboardDTO struct {
	Overview      analytics.Overview      `json:"overview"`
	PlatformStats []PlatformStatDTO       `json:"platformStats"`
	GrowthData    []analytics.GrowthPoint `json:"growthData"`
}
