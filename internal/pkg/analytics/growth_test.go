package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestMonthPeriods(t *testing.T) {
	now := time.Date(2024, time.March, 31, 15, 0, 0, 0, time.UTC)
	periods := MonthPeriods(now, 6)

	if len(periods) != 6 {
		t.Fatalf("len = %d, want 6", len(periods))
	}

	wantLabels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, p := range periods {
		if p.Label != wantLabels[i] {
			t.Errorf("periods[%d].Label = %q, want %q", i, p.Label, wantLabels[i])
		}
	}

	feb := periods[4].Target
	if feb.Month() != time.February || feb.Day() != 29 {
		t.Errorf("February target = %v, want end of Feb 2024", feb)
	}
	if !periods[5].Target.Equal(now) {
		t.Errorf("current month target = %v, want now", periods[5].Target)
	}
	for i := 1; i < len(periods); i++ {
		if !periods[i].Target.After(periods[i-1].Target) {
			t.Errorf("periods not chronological at %d", i)
		}
	}
}

func TestMonthPeriodsNonPositive(t *testing.T) {
	if got := MonthPeriods(time.Now(), 0); len(got) != 0 {
		t.Errorf("MonthPeriods(0) = %v", got)
	}
}

func TestNearestSnapshot(t *testing.T) {
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }
	history := []Snapshot{
		{Date: day(time.January, 1), Followers: 100},
		{Date: day(time.February, 1), Followers: 200},
		{Date: day(time.March, 1), Followers: 300},
	}

	if _, ok := NearestSnapshot(nil, day(time.January, 1)); ok {
		t.Error("expected no snapshot for empty history")
	}

	got, ok := NearestSnapshot(history, day(time.February, 25))
	if !ok || got.Followers != 300 {
		t.Errorf("nearest to Feb 25 = %+v, want March", got)
	}

	got, _ = NearestSnapshot(history, day(time.December, 1).AddDate(-1, 0, 0))
	if got.Followers != 100 {
		t.Errorf("nearest before history = %+v, want oldest", got)
	}

	tie := []Snapshot{
		{Date: day(time.January, 10), Followers: 1},
		{Date: day(time.January, 20), Followers: 2},
	}
	got, _ = NearestSnapshot(tie, day(time.January, 15))
	if got.Followers != 1 {
		t.Errorf("tie = %+v, want earlier snapshot", got)
	}
}

func TestGrowthSeries(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	periods := MonthPeriods(now, 3)
	histories := map[string][]Snapshot{
		"instagram": {
			{Date: time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), Followers: 10},
			{Date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), Followers: 30},
		},
	}
	platforms := []string{"instagram", "twitter"}

	series := GrowthSeries(periods, histories, platforms)
	if len(series) != 3 {
		t.Fatalf("len = %d, want 3", len(series))
	}

	want := []int64{10, 30, 30}
	for i, p := range series {
		if p.Values["instagram"] != want[i] {
			t.Errorf("%s instagram = %d, want %d", p.Name, p.Values["instagram"], want[i])
		}
		if v, ok := p.Values["twitter"]; !ok || v != 0 {
			t.Errorf("%s twitter = %d (present=%v), want 0", p.Name, v, ok)
		}
	}
}

func TestGrowthPointJSON(t *testing.T) {
	p := GrowthSeries(
		[]Period{{Label: "Jan", Target: time.Now()}},
		map[string][]Snapshot{"twitter": {{Date: time.Now(), Followers: 5}}},
		[]string{"instagram", "twitter"},
	)[0]

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != `{"name":"Jan","instagram":0,"twitter":5}` {
		t.Errorf("json = %s", got)
	}

	var back GrowthPoint
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "Jan" || back.Values["twitter"] != 5 {
		t.Errorf("decoded = %+v", back)
	}
	if strings.Contains(string(b), "Values") {
		t.Error("map field leaked into json")
	}
}

func TestGrowthPointJSONKeepsPlatformOrder(t *testing.T) {
	platforms := []string{"instagram", "twitter", "facebook", "linkedin"}
	p := GrowthSeries(
		[]Period{{Label: "Feb", Target: time.Now()}},
		map[string][]Snapshot{"facebook": {{Date: time.Now(), Followers: 7}}},
		platforms,
	)[0]
	first, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Feb","instagram":0,"twitter":0,"facebook":7,"linkedin":0}`
	if string(first) != want {
		t.Fatalf("json = %s, want %s", first, want)
	}

	// 从缓存解码后再编码，字段顺序不变
	var back GrowthPoint
	if err := json.Unmarshal(first, &back); err != nil {
		t.Fatal(err)
	}
	again, err := json.Marshal(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != want {
		t.Errorf("re-encoded json = %s, want %s", again, want)
	}

	var extra GrowthPoint
	if err := json.Unmarshal([]byte(`{"name":"Mar","zeta":1,"twitter":2,"alpha":3}`), &extra); err != nil {
		t.Fatal(err)
	}
	b, _ := json.Marshal(extra)
	if got := string(b); got != `{"name":"Mar","twitter":2,"alpha":3,"zeta":1}` {
		t.Errorf("json = %s", got)
	}
}
