package mystore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/datastore"
)

const maxTransactionAttempts = 3

type gcloudStore[T any] struct {
	client *datastore.Client
	kind   string
}

func newGcloudStore[T any](c context.Context, projectID string) (*gcloudStore[T], func(), error) {
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating datastore-client: %s", err)
	}

	return &gcloudStore[T]{
			client: client,
			kind:   kindOf[T](),
		}, func() {
			client.Close()
		}, nil
}

func kindOf[T any]() string {
	kind := fmt.Sprintf("%T", *new(T))
	if idx := strings.LastIndex(kind, "."); idx >= 0 {
		kind = kind[idx+1:]
	}
	return kind
}

func (s *gcloudStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	var err error
	for i := 1; i <= maxTransactionAttempts; i++ {
		err = s.runInTransaction(c, f)
		if errors.Is(err, datastore.ErrConcurrentTransaction) {
			// retrying requires idempotent business logic
			continue
		}
		return err
	}
	return err
}

func (s *gcloudStore[T]) runInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	t, err := s.client.NewTransaction(c)
	if err != nil {
		return fmt.Errorf("error creating transaction: %w", err)
	}

	// Shadow original context with new transactional context
	err = f(context.WithValue(c, ctxTransactionKey{}, t))
	if err != nil {
		// Rollback
		_ = t.Rollback()
		return err
	}

	// Commit
	_, err = t.Commit()
	if err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func transactionOf(c context.Context) *datastore.Transaction {
	t, _ := c.Value(ctxTransactionKey{}).(*datastore.Transaction)
	return t
}

func (s *gcloudStore[T]) Put(c context.Context, uid string, value T) error {
	key := datastore.NameKey(s.kind, uid, nil)

	var err error
	if t := transactionOf(c); t != nil {
		_, err = t.Put(key, &value)
	} else {
		_, err = s.client.Put(c, key, &value)
	}
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *gcloudStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)
	key := datastore.NameKey(s.kind, uid, nil)

	var err error
	if t := transactionOf(c); t != nil {
		err = t.Get(key, value)
	} else {
		err = s.client.Get(c, key, value)
	}
	if err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return *value, false, nil
		}
		return *value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.kind, uid, err)
	}

	return *value, true, nil
}

func (s *gcloudStore[T]) List(c context.Context) ([]T, error) {
	return s.query(c, datastore.NewQuery(s.kind).Limit(1000))
}

func (s *gcloudStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	q := datastore.NewQuery(s.kind)
	for _, f := range filters {
		q = q.FilterField(f.Field, f.Compare, f.Value)
	}
	if orderByField != "" {
		q = q.Order(orderByField)
	}
	return s.query(c, q)
}

func (s *gcloudStore[T]) query(c context.Context, q *datastore.Query) ([]T, error) {
	if t := transactionOf(c); t != nil {
		q = q.Transaction(t)
	}

	objectsToFetch := []T{}
	_, err := s.client.GetAll(c, q, &objectsToFetch)
	if err != nil {
		return nil, fmt.Errorf("error fetching entities %s: %s", s.kind, err)
	}
	return objectsToFetch, nil
}
