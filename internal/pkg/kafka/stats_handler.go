package kafka

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/pkg/logger"
	"SocialDash/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// StatsHandler 消费平台统计快照并写入 stats 表
type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

func (s *StatsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("stats consumer setup")
	return nil
}

func (s *StatsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("stats consumer cleanup")
	return nil
}

func (s *StatsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("stats consume claim", "topic", claim.Topic(), "partition", claim.Partition())
	return pullMessageBatch(session, claim, s.logic)
}

func (s *StatsHandler) logic(ctx context.Context, messages []*sarama.ConsumerMessage) error {
	ctx = logger.WithTraceID(ctx, "kafka-"+uuid.NewString())
	snapshots := DecodeSnapshots(ctx, messages)
	if len(snapshots) == 0 {
		return nil
	}
	n, err := s.statsSvc.IngestBatch(ctx, snapshots)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "stats batch ingested", "messages", len(messages), "rows", n)
	return nil
}

// DecodeSnapshots 解析失败的消息直接丢弃，不参与重试
func DecodeSnapshots(ctx context.Context, messages []*sarama.ConsumerMessage) []*dto.StatsSnapshotDTO {
	snapshots := make([]*dto.StatsSnapshotDTO, 0, len(messages))
	for _, msg := range messages {
		var snapshot dto.StatsSnapshotDTO
		if err := json.Unmarshal(msg.Value, &snapshot); err != nil {
			log.WarnContext(ctx, "drop malformed stats message",
				"partition", msg.Partition, "offset", msg.Offset, "err", err)
			continue
		}
		snapshots = append(snapshots, &snapshot)
	}
	return snapshots
}
