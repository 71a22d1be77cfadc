package kafka

import (
	"context"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer publishes through a shared kafka-go writer. The topic
// is set per message so one writer serves every outbox topic.
type WriterProducer struct {
	writer *segmentio.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &segmentio.Writer{
			Addr:         segmentio.TCP(brokers...),
			Balancer:     &segmentio.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: segmentio.RequireAll,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, segmentio.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer logs messages instead of sending them. Used when no
// brokers are configured, typically in local development.
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	zap.L().Info("initialized console producer, messages will not leave the process")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-time.After(50 * time.Millisecond):
		zap.L().Info("console producer message",
			zap.String("topic", topic),
			zap.ByteString("key", key),
			zap.ByteString("value", value),
		)
		return nil
	case <-ctx.Done():
		zap.L().Warn("console producer send cancelled",
			zap.String("topic", topic),
			zap.ByteString("key", key),
		)
		return ctx.Err()
	}
}

func (p *ConsoleProducer) Close() error {
	zap.L().Info("closing console producer")
	return nil
}
