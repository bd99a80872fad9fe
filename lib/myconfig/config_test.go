package myconfig

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("DELIVERY_FEE", "")
		t.Setenv("KAFKA_BROKERS", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "memory", cfg.Storage.Backend)
		assert.True(t, decimal.RequireFromString("5").Equal(cfg.Checkout.DeliveryFee))
		assert.Empty(t, cfg.Events.KafkaBrokers)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("STORAGE_BACKEND", "redis")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("DELIVERY_FEE", "2.50")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "redis", cfg.Storage.Backend)
		assert.Equal(t, 3, cfg.Storage.RedisDB)
		assert.True(t, decimal.RequireFromString("2.5").Equal(cfg.Checkout.DeliveryFee))
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
	})

	t.Run("Invalid number", func(t *testing.T) {
		t.Setenv("REDIS_DB", "abc")

		_, err := Load()
		assert.Error(t, err)
	})
}
