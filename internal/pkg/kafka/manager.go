package kafka

import (
	"SocialDash/internal/api/config"
	"SocialDash/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic         string
	statsConsumer sarama.ConsumerGroup
	statsHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, statsSvc service.StatsService) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	statsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.StatsConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		topic:         cfg.Kafka.StatsConsumer.Topic,
		statsConsumer: statsConsumer,
		statsHandler:  NewStatsHandler(statsSvc),
	}, nil
}

// Start 阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.statsConsumer.Errors() {
			log.Error("Error from stats consumer group", "err", err)
		}
	}()

	go func() {
		log.Info("Stats consumer started", "topic", m.topic)
		for {
			if err := m.statsConsumer.Consume(ctx, []string{m.topic}, m.statsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.statsConsumer.Close(); err != nil {
		log.Error("Failed to close stats consumer", "err", err)
	}
	return nil
}
