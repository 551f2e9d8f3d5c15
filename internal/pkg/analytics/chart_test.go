package analytics

import (
	"bytes"
	"testing"
	"time"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderGrowthChart(t *testing.T) {
	platforms := []string{"instagram", "twitter"}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		points []GrowthPoint
	}{
		{
			name: "several months",
			points: GrowthSeries(MonthPeriods(now, 3), map[string][]Snapshot{
				"instagram": {{Date: now.AddDate(0, -2, 0), Followers: 100}, {Date: now, Followers: 300}},
				"twitter":   {{Date: now.AddDate(0, -1, 0), Followers: 50}},
			}, platforms),
		},
		{
			name:   "single month without data",
			points: GrowthSeries(MonthPeriods(now, 1), nil, platforms),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderGrowthChart(&buf, tt.points, platforms); err != nil {
				t.Fatalf("RenderGrowthChart() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
				t.Fatalf("output is not a PNG")
			}
		})
	}
}
