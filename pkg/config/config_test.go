package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092, ,b:9092 "))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("RESTAURANT_TEST_STR", "value")
	t.Setenv("RESTAURANT_TEST_INT", "42")
	t.Setenv("RESTAURANT_TEST_BAD_INT", "forty")
	t.Setenv("RESTAURANT_TEST_DUR", "90m")
	t.Setenv("RESTAURANT_TEST_BAD_DUR", "-5s")

	assert.Equal(t, "value", EnvDefault("RESTAURANT_TEST_STR", "def"))
	assert.Equal(t, "def", EnvDefault("RESTAURANT_TEST_MISSING", "def"))
	assert.Equal(t, 42, EnvIntDefault("RESTAURANT_TEST_INT", 1))
	assert.Equal(t, 1, EnvIntDefault("RESTAURANT_TEST_BAD_INT", 1))
	assert.Equal(t, 90*time.Minute, EnvDurationDefault("RESTAURANT_TEST_DUR", time.Hour))
	assert.Equal(t, time.Hour, EnvDurationDefault("RESTAURANT_TEST_BAD_DUR", time.Hour))
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_STORE", "")

	cfg := Load()
	assert.Equal(t, 8081, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "cookie", cfg.SessionStore)
}
