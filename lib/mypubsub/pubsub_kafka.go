package mypubsub

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type kafkaPubSub struct {
	writer *kafka.Writer
}

func newKafkaPubSub(c context.Context, brokers []string) (PubSub, func(), error) {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &kafkaPubSub{
			writer: writer,
		}, func() {
			writer.Close()
		}, nil
}

// CreateTopic relies on broker-side auto creation.
func (ps *kafkaPubSub) CreateTopic(c context.Context, topic string) error {
	return nil
}

func (ps *kafkaPubSub) Publish(c context.Context, topic string, data string) error {
	err := ps.writer.WriteMessages(c, kafka.Message{
		Topic: topic,
		Value: []byte(data),
	})
	if err != nil {
		return fmt.Errorf("error publishing event on topic %s: %s", topic, err)
	}
	return nil
}
