package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return newProducer(producer, cfg.ReportsTopic()), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) ProduceMessage(key string, message []byte) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(message),
	})
	return err
}

// RequestReport queues a report for the chat; the reporter answers it.
func (p *Producer) RequestReport(_ context.Context, chatID int64, period string) error {
	req := NewReportRequest(chatID, period)
	raw, err := req.Marshal()
	if err != nil {
		return err
	}
	if err = p.ProduceMessage(req.ID, raw); err != nil {
		return errors.Wrap(err, "produce report request")
	}
	logger.Info("report requested",
		zap.String("id", req.ID),
		zap.Int64("chatID", chatID),
		zap.String("period", period))
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
