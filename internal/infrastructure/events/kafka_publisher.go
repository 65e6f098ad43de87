package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"supplylink/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

// KafkaPublisher emits domain events to a Kafka topic with a synchronous,
// idempotent producer. The message key is the escrow payment id so all events
// for one escrow land in the same partition, in order.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}, nil
}

func (p *KafkaPublisher) Publish(_ context.Context, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}
	p.logger.Debug("event published", "topic", p.topic, "key", key, "partition", partition, "offset", offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher discards events; used when no broker is configured.
type NopPublisher struct{}

var _ interfaces.IEventPublisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
