package myevents

import "time"

type EventEnvelope struct {
	UID           string    `json:"uid"`
	CreatedAt     time.Time `json:"createdAt"`
	Topic         string    `json:"topic"`
	AggregateUID  string    `json:"aggregateUID"`
	EventTypeName string    `json:"eventTypeName"`
	EventPayload  string    `json:"eventPayload" datastore:",noindex"`
}

func (e EventEnvelope) String() string {
	return e.Topic + "." + e.EventTypeName + "." + e.AggregateUID
}

type Event interface {
	GetEventTypeName() string
	GetAggregateName() string
}
