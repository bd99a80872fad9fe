package mypubsub

import (
	"context"

	"github.com/MarcGrol/grocerystore/lib/myconfig"
)

type PubSub interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, data string) error
}

// New chooses Google Pub/Sub when a cloud project is configured, Kafka when brokers are
// configured, and an in-process fake otherwise.
func New(c context.Context, cfg myconfig.EventsConfig) (PubSub, func(), error) {
	if cfg.GoogleCloudProject != "" {
		return newGcloudPubSub(c, cfg.GoogleCloudProject)
	}
	if len(cfg.KafkaBrokers) > 0 {
		return newKafkaPubSub(c, cfg.KafkaBrokers)
	}
	return NewFakePubSub(), func() {}, nil
}
