package mypubsub

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub"
)

type gcloudPubSub struct {
	sync.Mutex
	client *pubsub.Client
	topics map[string]*pubsub.Topic
}

func newGcloudPubSub(c context.Context, projectID string) (PubSub, func(), error) {
	client, err := pubsub.NewClient(c, projectID)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating pubsub-client: %s", err)
	}
	ps := &gcloudPubSub{
		client: client,
		topics: map[string]*pubsub.Topic{},
	}
	return ps, func() {
		ps.Lock()
		for _, topic := range ps.topics {
			topic.Stop()
		}
		ps.Unlock()
		client.Close()
	}, nil
}

func (ps *gcloudPubSub) CreateTopic(c context.Context, topicName string) error {
	topic := ps.client.Topic(topicName)
	exists, err := topic.Exists(c)
	if err != nil {
		return fmt.Errorf("error checking if topic %s exists: %s", topicName, err)
	}

	if !exists {
		topic, err = ps.client.CreateTopic(c, topicName)
		if err != nil {
			return fmt.Errorf("error creating topic %s: %s", topicName, err)
		}
	}

	ps.Lock()
	ps.topics[topicName] = topic
	ps.Unlock()

	return nil
}

func (ps *gcloudPubSub) Publish(c context.Context, topicName string, data string) error {
	ps.Lock()
	topic, found := ps.topics[topicName]
	if !found {
		topic = ps.client.Topic(topicName)
		ps.topics[topicName] = topic
	}
	ps.Unlock()

	_, err := topic.Publish(c, &pubsub.Message{Data: []byte(data)}).Get(c)
	if err != nil {
		return fmt.Errorf("error publishing event on topic %s: %s", topicName, err)
	}

	return nil
}
