package mystore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Fruit struct {
	UID   string
	Name  string
	Color string
}

var (
	banana = Fruit{UID: "1", Name: "Banana", Color: "yellow"}
	apple  = Fruit{UID: "2", Name: "Apple", Color: "red"}
	lemon  = Fruit{UID: "3", Name: "Lemon", Color: "yellow"}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	s, cleanup, err := New[Fruit](c, "")
	require.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := s.Get(c, banana.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		assert.NoError(t, s.Put(c, banana.UID, banana))
		assert.NoError(t, s.Put(c, apple.UID, apple))
		assert.NoError(t, s.Put(c, lemon.UID, lemon))
	})

	t.Run("Get found", func(t *testing.T) {
		f, found, err := s.Get(c, banana.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, banana, f)
	})

	t.Run("List keeps insertion order", func(t *testing.T) {
		all, err := s.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []Fruit{banana, apple, lemon}, all)
	})

	t.Run("Query on field", func(t *testing.T) {
		yellow, err := s.Query(c, []Filter{{Field: "Color", Compare: "=", Value: "yellow"}}, "")
		assert.NoError(t, err)
		assert.Equal(t, []Fruit{banana, lemon}, yellow)
	})

	t.Run("Query on unknown field", func(t *testing.T) {
		_, err := s.Query(c, []Filter{{Field: "Taste", Compare: "=", Value: "sweet"}}, "")
		assert.Error(t, err)
	})

	t.Run("Transaction commits", func(t *testing.T) {
		err := s.RunInTransaction(c, func(c context.Context) error {
			f, _, err := s.Get(c, apple.UID)
			if err != nil {
				return err
			}
			f.Color = "green"
			return s.Put(c, f.UID, f)
		})
		assert.NoError(t, err)

		f, _, _ := s.Get(c, apple.UID)
		assert.Equal(t, "green", f.Color)
	})

	t.Run("Transaction rolls back", func(t *testing.T) {
		errAbort := errors.New("abort")
		err := s.RunInTransaction(c, func(c context.Context) error {
			err := s.Put(c, "4", Fruit{UID: "4", Name: "Kiwi"})
			if err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		_, found, _ := s.Get(c, "4")
		assert.False(t, found)
		all, _ := s.List(c)
		assert.Len(t, all, 3)
	})
}

type Ripeness string

type Tomato struct {
	UID      string
	Ripeness Ripeness
}

func TestQueryOnNamedStringType(t *testing.T) {
	c := context.TODO()
	s, _, _ := NewInMemoryStore[Tomato](c)
	_ = s.Put(c, "1", Tomato{UID: "1", Ripeness: "green"})
	_ = s.Put(c, "2", Tomato{UID: "2", Ripeness: "red"})

	red, err := s.Query(c, []Filter{{Field: "Ripeness", Compare: "=", Value: "red"}}, "")
	assert.NoError(t, err)
	assert.Equal(t, []Tomato{{UID: "2", Ripeness: "red"}}, red)
}
