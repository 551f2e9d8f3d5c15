package util

import (
	"SocialDash/internal/pkg/consts"
	"slices"
	"strings"
	"time"
)

// NormalizePlatform 平台名统一为小写
func NormalizePlatform(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsSupportedPlatform 判断平台是否受支持（大小写不敏感）
func IsSupportedPlatform(name string) bool {
	return slices.Contains(consts.SupportedPlatforms, NormalizePlatform(name))
}

// ParseDate 支持 RFC 3339 与 YYYY-MM-DD 两种格式
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.DateOnly, value, time.Local)
}

// StartOfDay 返回当天零点
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClampInt 将 v 限制在 [lo, hi]，v 为 0 时使用默认值
func ClampInt(v, def, lo, hi int) int {
	if v == 0 {
		return def
	}
	return min(max(v, lo), hi)
}
