package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/parts-inventory/internal/config"
)

func TestNew(t *testing.T) {
	type Config struct {
		Log       config.Log
		HTTP      config.HTTP
		Cors      config.Cors
		Inventory config.Inventory
		Kafka     config.Kafka
	}

	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.AllowedOrigins)
		assert.Equal(t,
			[]string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "CONNECT", "TRACE"},
			cfg.Cors.AllowedMethods,
		)
		assert.True(t, cfg.Inventory.SeedExampleParts)
		assert.Equal(t, 20, cfg.Inventory.DefaultMinStockLevel)
		assert.False(t, cfg.Kafka.Enabled)
		assert.Equal(t, "part.restock_alert", cfg.Kafka.AlertTopic)
	})

	t.Run("Should read overrides from env", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://parts.example.com")
		t.Setenv("CORS_ALLOWED_METHODS", "GET,PUT")
		t.Setenv("SEED_EXAMPLE_PARTS", "false")

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, uint32(9090), cfg.HTTP.Port)
		assert.Equal(t, []string{"http://localhost:3000", "https://parts.example.com"}, cfg.Cors.AllowedOrigins)
		assert.Equal(t, []string{"GET", "PUT"}, cfg.Cors.AllowedMethods)
		assert.False(t, cfg.Inventory.SeedExampleParts)
	})

	t.Run("Should reject unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.New[Config]()
		assert.Error(t, err)
	})
}
