package kafka

import (
	"SocialDash/internal/api/config"
	"testing"
	"time"

	"github.com/IBM/sarama"
)

func TestNewSaramaConfig(t *testing.T) {
	cfg := newSaramaConfig(config.KafkaConfig{
		Sasl: config.SaslConfig{Enable: true, Username: "u", Password: "p"},
		Consumer: config.ConsumerConfig{
			SessionTimeout:    30,
			HeartbeatInterval: 3,
			RebalanceTimeout:  60,
			MaxProcessingTime: 10,
		},
	})

	if !cfg.Net.SASL.Enable || cfg.Net.SASL.User != "u" || cfg.Net.SASL.Mechanism != sarama.SASLTypePlaintext {
		t.Errorf("sasl not configured: %+v", cfg.Net.SASL)
	}
	if cfg.Consumer.Offsets.AutoCommit.Enable {
		t.Errorf("auto commit should be disabled")
	}
	if cfg.Consumer.Group.Session.Timeout != 30*time.Second {
		t.Errorf("session timeout = %v", cfg.Consumer.Group.Session.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
