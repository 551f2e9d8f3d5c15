package dto

import "time"

// PlatformDataDTO 平台最新一条统计，缺失字段为 0
type PlatformDataDTO struct {
	Followers       int64   `json:"followers"`
	EngagementRate  float64 `json:"engagementRate"`
	TotalPosts      int64   `json:"totalPosts"`
	HashtagReach    int64   `json:"hashtagReach"`
	Retweets        int64   `json:"retweets"`
	Impressions     int64   `json:"impressions"`
	PageLikes       int64   `json:"pageLikes"`
	Reach           int64   `json:"reach"`
	CommunityGrowth int64   `json:"communityGrowth"`
	ContentViews    int64   `json:"contentViews"`
	ActiveJobs      int64   `json:"activeJobs"`
}

type PlatformSummaryDTO struct {
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagementRate"`
}

type OverviewQueryDTO struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

type OverviewPointDTO struct {
	Date       string  `json:"date"`
	Followers  int64   `json:"followers"`
	Engagement float64 `json:"engagement"`
}

type EngagementDTO struct {
	Type  string  `json:"type"`
	Count int64   `json:"count"`
	Rate  float64 `json:"rate"`
}

type ContentDTO struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

type AudienceDTO struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Change     float64 `json:"change"`
}

// StatsSnapshotDTO Kafka 中推送的一条平台统计
type StatsSnapshotDTO struct {
	Platform        string     `json:"platform"`
	Date            *time.Time `json:"date"`
	Followers       int64      `json:"followers"`
	EngagementRate  float64    `json:"engagementRate"`
	TotalPosts      int64      `json:"totalPosts"`
	HashtagReach    int64      `json:"hashtagReach"`
	Retweets        int64      `json:"retweets"`
	Impressions     int64      `json:"impressions"`
	PageLikes       int64      `json:"pageLikes"`
	Reach           int64      `json:"reach"`
	CommunityGrowth int64      `json:"communityGrowth"`
	ContentViews    int64      `json:"contentViews"`
	ActiveJobs      int64      `json:"activeJobs"`
}
