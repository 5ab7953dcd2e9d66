package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"praxis/internal/shared/config"
)

// Producer publishes appointment events for asynchronous delivery.
type Producer interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error
	Close() error
}

// KafkaProducer publishes appointment events to a single Kafka topic using
// a synchronous, idempotent producer.
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		topic:    cfg.AppointmentsTopic,
	}, nil
}

func (p *KafkaProducer) PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal appointment event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish appointment event: %w", err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}

// NoopProducer is used when Kafka is disabled; events are dropped silently.
type NoopProducer struct{}

func (NoopProducer) PublishAppointmentEvent(context.Context, *AppointmentEvent) error { return nil }
func (NoopProducer) Close() error                                                    { return nil }
