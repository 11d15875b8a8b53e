package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"SERVER_PORT": "8080",
		"REQUESTS_PER_MINUTE": 120,
		"DATABASE_HEALTH_LOOP_INTERVAL": 30,
		"CACHE_TTL_SECONDS": 300,
		"DB_USER": "zoo",
		"DB_PASSWORD": "secret",
		"DB_NAME": "zoodb",
		"DB_HOST": "db.internal",
		"DB_PORT": "5433",
		"DB_SSLMODE": "require",
		"REDIS_ADDRESS": "cache.internal:6379",
		"REDIS_PASSWORD": "hunter2",
		"REDIS_DB": 2
	}`), 0o600))

	config := LoadConfiguration(path)

	assert.Equal(t, "8080", config.ServerPort)
	assert.Equal(t, 120, config.RequestsPerMinute)
	assert.Equal(t, int64(30), config.DBHealthInterval)
	assert.Equal(t, int64(300), config.CacheTTL)
	assert.Equal(t, "zoo", config.DBUser)
	assert.Equal(t, "secret", config.DBPassword)
	assert.Equal(t, "zoodb", config.DBName)
	assert.Equal(t, "db.internal", config.DBHost)
	assert.Equal(t, "5433", config.DBPort)
	assert.Equal(t, "require", config.DBSSLMode)
	assert.Equal(t, "cache.internal:6379", config.RedisAddress)
	assert.Equal(t, "hunter2", config.RedisPassword)
	assert.Equal(t, 2, config.RedisDB)
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"DB_USER":"zoo"}`), 0o600))

	config := LoadConfiguration(path)

	// a minimal file only needs the connection credentials
	assert.Equal(t, "3000", config.ServerPort)
	assert.Equal(t, 60, config.RequestsPerMinute)
	assert.Equal(t, int64(10), config.DBHealthInterval)
	assert.Equal(t, int64(60), config.CacheTTL)
	assert.Equal(t, "zoo", config.DBUser)
}
