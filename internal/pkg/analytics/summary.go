package analytics

import (
	"fmt"
	"math"
)

// PlatformSnapshot 单个平台当前的统计快照
type PlatformSnapshot struct {
	Platform       string
	Followers      int64
	EngagementRate float64
	Growth         int64
}

// Overview 看板顶部的汇总指标
type Overview struct {
	TotalFollowers int64  `json:"totalFollowers"`
	AvgEngagement  string `json:"avgEngagement"`
	GrowthRate     string `json:"growthRate"`
	AIInsights     int    `json:"aiInsights"`
}

// Summarize 将各平台快照汇总为 Overview，空输入返回零值而不是 NaN
func Summarize(snapshots []PlatformSnapshot) Overview {
	if len(snapshots) == 0 {
		return Overview{
			TotalFollowers: 0,
			AvgEngagement:  "0",
			GrowthRate:     "+0%",
		}
	}

	var totalFollowers, totalGrowth int64
	var engagementSum float64
	for _, s := range snapshots {
		totalFollowers += s.Followers
		totalGrowth += s.Growth
		// 与平台卡片展示的一位小数保持一致
		engagementSum += roundOne(s.EngagementRate)
	}

	growthRate := 0.0
	if totalFollowers != 0 {
		growthRate = float64(totalGrowth) / float64(totalFollowers) * 100
	}

	return Overview{
		TotalFollowers: totalFollowers,
		AvgEngagement:  FormatEngagement(engagementSum / float64(len(snapshots))),
		GrowthRate:     FormatGrowthRate(growthRate),
	}
}

// FormatEngagement 保留一位小数
func FormatEngagement(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", roundOne(rate))
}

// FormatGrowthRate 带符号、一位小数、百分号；四舍五入为 0 时固定为 "+0.0%"
func FormatGrowthRate(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return "+0.0%"
	}
	r := roundOne(rate)
	if r == 0 {
		return "+0.0%"
	}
	return fmt.Sprintf("%+.1f%%", r)
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
