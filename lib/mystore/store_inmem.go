package mystore

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// InMemoryStore keeps values in insertion order. Transactions serialize on a single lock
// and roll back on error.
type InMemoryStore[T any] struct {
	sync.Mutex
	items map[string]T
	order []string
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		items: map[string]T{},
		order: []string{},
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()
	defer s.Unlock()

	backupItems := make(map[string]T, len(s.items))
	for k, v := range s.items {
		backupItems[k] = v
	}
	backupOrder := append([]string{}, s.order...)

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	// Within this block everything is transactional
	err := f(ctx)
	if err != nil {
		// Rollback
		s.items = backupItems
		s.order = backupOrder
		return err
	}

	// Commit
	return nil
}

func (s *InMemoryStore[T]) lockUnlessTransactional(c context.Context) func() {
	if c.Value(ctxTransactionKey{}) != nil {
		return func() {}
	}
	s.Lock()
	return s.Unlock
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	defer s.lockUnlessTransactional(c)()

	if _, exists := s.items[uid]; !exists {
		s.order = append(s.order, uid)
	}
	s.items[uid] = value

	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	defer s.lockUnlessTransactional(c)()

	result, exists := s.items[uid]

	return result, exists, nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	defer s.lockUnlessTransactional(c)()

	result := make([]T, 0, len(s.items))
	for _, uid := range s.order {
		result = append(result, s.items[uid])
	}

	return result, nil
}

// Query supports equality filters on exported fields only; ordering is left to the caller.
func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(all))
	for _, item := range all {
		match, err := matches(item, filters)
		if err != nil {
			return nil, err
		}
		if match {
			result = append(result, item)
		}
	}
	return result, nil
}

func matches(item any, filters []Filter) (bool, error) {
	v := reflect.Indirect(reflect.ValueOf(item))
	for _, f := range filters {
		if f.Compare != "=" {
			return false, fmt.Errorf("unsupported comparison %q on field %s", f.Compare, f.Field)
		}
		if v.Kind() != reflect.Struct {
			return false, fmt.Errorf("cannot filter on non-struct %s", v.Type())
		}
		field := v.FieldByName(f.Field)
		if !field.IsValid() {
			return false, fmt.Errorf("unknown field %s", f.Field)
		}
		if !fieldEquals(field, f.Value) {
			return false, nil
		}
	}
	return true, nil
}

// fieldEquals lets named string types match a plain string, as datastore does.
func fieldEquals(field reflect.Value, value any) bool {
	if s, ok := value.(string); ok && field.Kind() == reflect.String {
		return field.String() == s
	}
	return reflect.DeepEqual(field.Interface(), value)
}
