package redis

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/incremental-merkle-go/pkg/logger"
	"github.com/Layr-Labs/incremental-merkle-go/pkg/merkle"
)

// getTestRedisAddress returns the Redis address for testing.
// Uses REDIS_TEST_ADDRESS env var if set, otherwise defaults to localhost:6379.
func getTestRedisAddress() string {
	if addr := os.Getenv("REDIS_TEST_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// requireRedis skips the test if Redis is not available
func requireRedis(t *testing.T) *RedisPersistence {
	t.Helper()

	testLogger, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	cfg := &RedisConfig{
		Address:   getTestRedisAddress(),
		DB:        15, // Use DB 15 for tests to avoid conflicts
		KeyPrefix: "test:",
	}

	rp, err := NewRedisPersistence(cfg, testLogger)
	if err != nil {
		t.Skipf("Redis not available at %s: %v", cfg.Address, err)
		return nil
	}

	return rp
}

func TestRedisPersistence_SaveAndLoadTree(t *testing.T) {
	rp := requireRedis(t)
	defer func() { _ = rp.Close() }()

	tree := merkle.NewTree()
	for i := 0; i < 10; i++ {
		require.NoError(t, tree.Insert([32]byte{byte(i + 1)}))
	}

	err := rp.SaveTree(tree)
	require.NoError(t, err)

	loaded, err := rp.LoadTree()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, tree, loaded)
}

func TestRedisPersistence_SaveTree_Nil(t *testing.T) {
	rp := requireRedis(t)
	defer func() { _ = rp.Close() }()

	err := rp.SaveTree(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil tree")
}

func TestRedisPersistence_Closed(t *testing.T) {
	rp := requireRedis(t)
	require.NoError(t, rp.Close())
	require.NoError(t, rp.Close()) // Idempotent

	_, err := rp.LoadTree()
	assert.Error(t, err)
	assert.Error(t, rp.SaveTree(merkle.NewTree()))
	assert.Error(t, rp.HealthCheck())
}

func TestRedisPersistence_NilConfig(t *testing.T) {
	testLogger, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	_, err := NewRedisPersistence(nil, testLogger)
	require.Error(t, err)

	_, err = NewRedisPersistence(&RedisConfig{}, testLogger)
	require.Error(t, err)
}
