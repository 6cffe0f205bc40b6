package mq

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// Producer publishes activity events keyed by session so per-session
// ordering is preserved within a partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *Producer) Publish(ctx context.Context, ev ActivityEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.SessionId),
		Value: payload,
	})
	if err != nil {
		logx.WithContext(ctx).Errorw("failed to publish activity event",
			logx.Field("kind", ev.Kind), logx.Field("err", err))
	}
	return err
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
