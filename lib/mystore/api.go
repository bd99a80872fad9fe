package mystore

import (
	"context"
)

type ctxTransactionKey struct{}

type Filter struct {
	Field   string
	Compare string
	Value   any
}

type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	List(c context.Context) ([]T, error)
	Query(c context.Context, filters []Filter, orderByField string) ([]T, error)
}

// New returns a Cloud Datastore backed store when projectID is set, otherwise an
// in-memory one.
func New[T any](c context.Context, projectID string) (Store[T], func(), error) {
	if projectID != "" {
		return newGcloudStore[T](c, projectID)
	}

	return NewInMemoryStore[T](c)
}
