package notifications

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"praxis/internal/shared/config"
	"praxis/pkg/logger"
)

// RecipientResolver maps the event's user ID to an email address. Wired to
// the users repository at bootstrap.
type RecipientResolver func(ctx context.Context, userID uuid.UUID) (string, error)

// Consumer reads appointment events from Kafka and hands them to the email
// sender. It implements sarama.ConsumerGroupHandler.
type Consumer struct {
	group     sarama.ConsumerGroup
	topic     string
	sender    EmailSender
	recipient RecipientResolver
	log       *logger.Logger
}

func NewConsumer(cfg config.KafkaConfig, sender EmailSender, recipient RecipientResolver, log *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &Consumer{
		group:     group,
		topic:     cfg.AppointmentsTopic,
		sender:    sender,
		recipient: recipient,
		log:       log,
	}, nil
}

// Start consumes until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error("consumer group session failed", slog.Any("error", err))
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *Consumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	event, err := EventFromJSON(message.Value)
	if err != nil {
		c.log.Error("dropping undecodable appointment event",
			slog.Any("error", err),
			slog.Int64("offset", message.Offset),
		)
		return
	}

	recipient, err := c.recipient(ctx, event.UserID)
	if err != nil {
		c.log.Error("failed to resolve event recipient",
			slog.Any("error", err),
			slog.String("event_id", event.ID.String()),
		)
		return
	}

	if err := c.sender.SendAppointmentEmail(ctx, event, recipient); err != nil {
		c.log.Error("failed to deliver appointment email",
			slog.Any("error", err),
			slog.String("event_id", event.ID.String()),
		)
		return
	}

	c.log.Info("appointment notification delivered",
		slog.String("event_type", string(event.Type)),
		slog.String("appointment_id", event.AppointmentID.String()),
	)
}
