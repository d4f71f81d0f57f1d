package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const cannotBuildReportMessage = "Can't build your report atm. Try later"

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportRenderer interface {
	RenderReport(ctx context.Context, period string) (string, error)
}

type reportSender interface {
	SendMessage(text string, userID int64) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	generator     reportRenderer
	sender        reportSender
}

func NewConsumer(cfg consumerConfig, generator reportRenderer, sender reportSender) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ReportsTopic(),
		generator:     generator,
		sender:        sender,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		req, err := UnmarshalReportRequest(message.Value)
		if err != nil {
			logger.Error("cannot unmarshal kafka message", zap.Error(err))
		} else {
			logger.Info(
				"received report request",
				zap.ByteString("key", message.Key),
				zap.Int64("chatID", req.ChatID),
				zap.String("period", req.Period),
			)
			c.processRequest(session.Context(), req)
		}
		session.MarkMessage(message, "")
	}

	return nil
}

func (c *Consumer) processRequest(ctx context.Context, req ReportRequest) {
	text, err := c.generator.RenderReport(ctx, req.Period)
	if err != nil {
		logger.Error("failed to generate report", zap.Error(err), zap.String("id", req.ID))
		text = cannotBuildReportMessage
	}
	if err = c.sender.SendMessage(text, req.ChatID); err != nil {
		logger.Error("failed to send report", zap.Error(err), zap.String("id", req.ID))
	}
}
