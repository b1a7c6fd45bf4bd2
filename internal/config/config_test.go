package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:9090/api", cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, SnapshotStoreMemory, cfg.SnapshotStore)
	assert.Equal(t, 30*time.Minute, cfg.SnapshotTTL)
	assert.Equal(t, "@every 30s", cfg.HealthProbeSchedule)
	assert.False(t, cfg.EnableTransactionExport)
	assert.Equal(t, "custlysis_session", cfg.SessionCookie)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:9090/api/")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("SNAPSHOT_STORE", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ENABLE_TRANSACTION_EXPORT", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9090/api", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, SnapshotStoreRedis, cfg.SnapshotStore)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.EnableTransactionExport)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "empty backend", key: "BACKEND_URL", val: ""},
		{name: "bad timeout", key: "REQUEST_TIMEOUT", val: "soon"},
		{name: "bad redis db", key: "REDIS_DB", val: "one"},
		{name: "unknown store", key: "SNAPSHOT_STORE", val: "memcached"},
		{name: "empty cookie", key: "SESSION_COOKIE", val: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
