package mypubsub

import (
	"context"
	"sync"
)

type Message struct {
	Topic string
	Data  string
}

// FakePubSub keeps published messages in memory.
type FakePubSub struct {
	sync.Mutex
	topics    map[string]bool
	published []Message
}

func NewFakePubSub() *FakePubSub {
	return &FakePubSub{
		topics:    map[string]bool{},
		published: []Message{},
	}
}

func (ps *FakePubSub) CreateTopic(c context.Context, topic string) error {
	ps.Lock()
	defer ps.Unlock()

	ps.topics[topic] = true
	return nil
}

func (ps *FakePubSub) Publish(c context.Context, topic string, data string) error {
	ps.Lock()
	defer ps.Unlock()

	ps.published = append(ps.published, Message{Topic: topic, Data: data})
	return nil
}

func (ps *FakePubSub) Published() []Message {
	ps.Lock()
	defer ps.Unlock()

	return append([]Message{}, ps.published...)
}
