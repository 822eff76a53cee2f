package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"YUMMIN_APP_NAME":               os.Getenv("YUMMIN_APP_NAME"),
		"YUMMIN_APP_ENV":                os.Getenv("YUMMIN_APP_ENV"),
		"YUMMIN_APP_PORT":               os.Getenv("YUMMIN_APP_PORT"),
		"YUMMIN_DATABASE_PATH":          os.Getenv("YUMMIN_DATABASE_PATH"),
		"YUMMIN_LOG_LEVEL":              os.Getenv("YUMMIN_LOG_LEVEL"),
		"YUMMIN_STORE_WHATSAPP_PHONE":   os.Getenv("YUMMIN_STORE_WHATSAPP_PHONE"),
		"YUMMIN_STORE_ORDER_ID_PREFIX":  os.Getenv("YUMMIN_STORE_ORDER_ID_PREFIX"),
		"YUMMIN_STORE_SEED_ORDER_COUNT": os.Getenv("YUMMIN_STORE_SEED_ORDER_COUNT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "yummin-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "yummin.db", cfg.Database.Path)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "918877116603", cfg.Store.WhatsAppPhone)
		assert.Equal(t, "YUM", cfg.Store.OrderIDPrefix)
		assert.Equal(t, 30, cfg.Store.SeedOrderCount)
	})

	t.Run("loads values from environment variables with YUMMIN prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("YUMMIN_APP_NAME", "test-app")
		os.Setenv("YUMMIN_APP_ENV", "testing")
		os.Setenv("YUMMIN_APP_PORT", "9000")
		os.Setenv("YUMMIN_DATABASE_PATH", ":memory:")
		os.Setenv("YUMMIN_LOG_LEVEL", "debug")
		os.Setenv("YUMMIN_STORE_WHATSAPP_PHONE", "911234567890")
		os.Setenv("YUMMIN_STORE_SEED_ORDER_COUNT", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, ":memory:", cfg.Database.Path)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "911234567890", cfg.Store.WhatsAppPhone)
		assert.Equal(t, 10, cfg.Store.SeedOrderCount)
	})

	t.Run("rejects non-numeric whatsapp phone", func(t *testing.T) {
		clearEnv()
		os.Setenv("YUMMIN_STORE_WHATSAPP_PHONE", "+91 88771 16603")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "digits only")
	})

	t.Run("rejects negative seed order count", func(t *testing.T) {
		clearEnv()
		os.Setenv("YUMMIN_STORE_SEED_ORDER_COUNT", "-5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "seed_order_count")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"YUMMIN_APP_ENV":                 os.Getenv("YUMMIN_APP_ENV"),
		"YUMMIN_DATABASE_PATH":           os.Getenv("YUMMIN_DATABASE_PATH"),
		"YUMMIN_HTTP_CORS_ALLOW_ORIGINS": os.Getenv("YUMMIN_HTTP_CORS_ALLOW_ORIGINS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("rejects in-memory database in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("YUMMIN_APP_ENV", "production")
		os.Setenv("YUMMIN_DATABASE_PATH", ":memory:")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ":memory:")
	})

	t.Run("rejects wildcard CORS origin in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("YUMMIN_APP_ENV", "production")
		os.Setenv("YUMMIN_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("YUMMIN_APP_ENV", "production")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}
