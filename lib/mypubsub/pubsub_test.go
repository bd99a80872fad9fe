package mypubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/grocerystore/lib/myconfig"
)

func TestPubSub(t *testing.T) {
	c := context.TODO()

	t.Run("Fake is chosen without configuration", func(t *testing.T) {
		ps, cleanup, err := New(c, myconfig.EventsConfig{})
		require.NoError(t, err)
		defer cleanup()

		_, ok := ps.(*FakePubSub)
		assert.True(t, ok)
	})

	t.Run("Fake records messages", func(t *testing.T) {
		ps := NewFakePubSub()

		assert.NoError(t, ps.CreateTopic(c, "order"))
		assert.NoError(t, ps.Publish(c, "order", "hello"))

		assert.Equal(t, []Message{{Topic: "order", Data: "hello"}}, ps.Published())
	})
}
