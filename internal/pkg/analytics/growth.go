package analytics

import (
	"SocialDash/internal/pkg/consts"
	"bytes"
	"slices"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

// Period 增长曲线上的一个月份
type Period struct {
	Label  string
	Target time.Time
}

// Snapshot 某平台在某一时刻的粉丝数
type Snapshot struct {
	Date      time.Time
	Followers int64
}

// GrowthPoint 增长曲线上的一个点，序列化为 {"name": "Jan", "<platform>": n, ...}
type GrowthPoint struct {
	Name   string
	Values map[string]int64
	// order 保证序列化时平台字段顺序稳定
	order []string
}

// MonthPeriods 返回最近 n 个自然月（含当月），按时间正序
func MonthPeriods(now time.Time, n int) []Period {
	if n <= 0 {
		return []Period{}
	}
	periods := make([]Period, n)
	// 以每月 1 日做月份运算，避免 31 日跨月
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < n; i++ {
		start := first.AddDate(0, -(n - 1 - i), 0)
		target := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		if i == n-1 {
			target = now
		}
		periods[i] = Period{
			Label:  start.Format("Jan"),
			Target: target,
		}
	}
	return periods
}

// NearestSnapshot 返回日期离 target 最近的快照，距离相同时取更早的。
// 最近的快照可能晚于 target，过去的月份因此可能显示之后的粉丝数
func NearestSnapshot(snapshots []Snapshot, target time.Time) (Snapshot, bool) {
	if len(snapshots) == 0 {
		return Snapshot{}, false
	}
	best := snapshots[0]
	bestDist := absDuration(best.Date.Sub(target))
	for _, s := range snapshots[1:] {
		d := absDuration(s.Date.Sub(target))
		if d < bestDist || (d == bestDist && s.Date.Before(best.Date)) {
			best, bestDist = s, d
		}
	}
	return best, true
}

// GrowthSeries 为每个月份、每个平台取最近快照的粉丝数，无历史的平台记 0
func GrowthSeries(periods []Period, histories map[string][]Snapshot, platforms []string) []GrowthPoint {
	points := make([]GrowthPoint, 0, len(periods))
	for _, p := range periods {
		values := make(map[string]int64, len(platforms))
		for _, name := range platforms {
			if s, ok := NearestSnapshot(histories[name], p.Target); ok {
				values[name] = s.Followers
			} else {
				values[name] = 0
			}
		}
		points = append(points, GrowthPoint{
			Name:   p.Label,
			Values: values,
			order:  platforms,
		})
	}
	return points
}

func (p GrowthPoint) MarshalJSON() ([]byte, error) {
	keys := p.order
	if len(keys) == 0 {
		keys = make([]string, 0, len(p.Values))
		for k := range p.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	name, err := json.Marshal(p.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	for _, k := range keys {
		if k == "name" {
			continue
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Values[k])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *GrowthPoint) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Values = make(map[string]int64, len(raw))
	for k, v := range raw {
		if k == "name" {
			if err := json.Unmarshal(v, &p.Name); err != nil {
				return err
			}
			continue
		}
		var n int64
		if err := json.Unmarshal(v, &n); err != nil {
			return err
		}
		p.Values[k] = n
	}
	p.order = platformOrder(p.Values)
	return nil
}

// platformOrder 支持的平台按固定顺序在前，其余按字母序
func platformOrder(values map[string]int64) []string {
	order := make([]string, 0, len(values))
	for _, name := range consts.SupportedPlatforms {
		if _, ok := values[name]; ok {
			order = append(order, name)
		}
	}
	rest := make([]string, 0, len(values)-len(order))
	for k := range values {
		if !slices.Contains(consts.SupportedPlatforms, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
