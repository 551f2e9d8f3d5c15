package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
)

func TestDecodeSnapshots(t *testing.T) {
	messages := []*sarama.ConsumerMessage{
		{Value: []byte(`{"platform":"twitter","date":"2024-05-01T00:00:00Z","followers":1200,"engagementRate":3.5}`)},
		{Value: []byte(`not json`), Offset: 7},
		{Value: []byte(`{"platform":"instagram","followers":800}`)},
	}

	snapshots := DecodeSnapshots(context.Background(), messages)
	if len(snapshots) != 2 {
		t.Fatalf("len = %d, want 2", len(snapshots))
	}
	if snapshots[0].Platform != "twitter" || snapshots[0].Followers != 1200 || snapshots[0].EngagementRate != 3.5 {
		t.Errorf("first snapshot = %+v", snapshots[0])
	}
	if snapshots[0].Date == nil || snapshots[0].Date.Month() != 5 {
		t.Errorf("first snapshot date = %v", snapshots[0].Date)
	}
	if snapshots[1].Platform != "instagram" || snapshots[1].Date != nil {
		t.Errorf("second snapshot = %+v", snapshots[1])
	}
}
