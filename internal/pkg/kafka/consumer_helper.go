package kafka

import (
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second

	maxRetryInterval = 5 * time.Second
)

// BatchLogicFunc 处理一批消息，返回错误时整批重试
type BatchLogicFunc func(ctx context.Context, messages []*sarama.ConsumerMessage) error

// pullMessageBatch 按数量或超时攒批，然后执行业务逻辑
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic BatchLogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				if len(batch) > 0 {
					processBatch(session, batch, logic)
				}
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				processBatch(session, batch, logic)
				// 清空缓冲区 & 重置定时器
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				processBatch(session, batch, logic)
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 失败时指数退避重试，成功后提交最后一条的 offset
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic BatchLogicFunc) {
	ctx := session.Context()
	retryInterval := 100 * time.Millisecond

	for {
		err := logic(ctx, messages)
		if err == nil {
			break
		}
		log.ErrorContext(ctx, "process batch error", "size", len(messages), "err", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryInterval):
		}

		retryInterval *= 2
		if retryInterval > maxRetryInterval {
			retryInterval = maxRetryInterval
		}
	}

	if len(messages) > 0 {
		session.MarkMessage(messages[len(messages)-1], "")
		session.Commit()
	}
}
