package config

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for the accumulator CLI
const (
	EnvIMTPersistence   = "IMT_PERSISTENCE"
	EnvIMTDataPath      = "IMT_DATA_PATH"
	EnvIMTRedisAddress  = "IMT_REDIS_ADDRESS"
	EnvIMTRedisPassword = "IMT_REDIS_PASSWORD"
	EnvIMTRedisDB       = "IMT_REDIS_DB"
	EnvIMTKeyPrefix     = "IMT_KEY_PREFIX"
	EnvIMTVerbose       = "IMT_VERBOSE"
)

// PersistenceType selects the storage backend for the frontier.
type PersistenceType string

const (
	PersistenceTypeMemory PersistenceType = "memory"
	PersistenceTypeBadger PersistenceType = "badger"
	PersistenceTypeRedis  PersistenceType = "redis"
)

func (p PersistenceType) String() string {
	return string(p)
}

// Config represents the complete configuration for the accumulator CLI.
type Config struct {
	// Persistence backend selection
	PersistenceType PersistenceType `json:"persistence_type"`

	// DataPath is the badger database directory (badger backend only)
	DataPath string `json:"data_path,omitempty"`

	// Redis connection settings (redis backend only)
	RedisAddress  string `json:"redis_address,omitempty"`
	RedisPassword string `json:"-"`
	RedisDB       int    `json:"redis_db,omitempty"`

	// KeyPrefix namespaces the stored record (multi-tenant setups)
	KeyPrefix string `json:"key_prefix,omitempty"`

	// Operational settings
	Verbose bool `json:"verbose"`
}

// Validate checks the configuration for the selected backend.
func (c *Config) Validate() error {
	var allErrors field.ErrorList

	switch c.PersistenceType {
	case PersistenceTypeMemory:
		// Nothing to configure.
	case PersistenceTypeBadger:
		if c.DataPath == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("dataPath"), "dataPath is required for the badger backend"))
		}
	case PersistenceTypeRedis:
		if c.RedisAddress == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("redisAddress"), "redisAddress is required for the redis backend"))
		}
		if c.RedisDB < 0 || c.RedisDB > 15 {
			allErrors = append(allErrors, field.Invalid(field.NewPath("redisDB"), c.RedisDB, "redis database number must be between 0 and 15"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(field.NewPath("persistenceType"), c.PersistenceType,
			[]string{string(PersistenceTypeMemory), string(PersistenceTypeBadger), string(PersistenceTypeRedis)}))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// GetSupportedPersistenceTypesString lists the valid backend names for help
// output.
func GetSupportedPersistenceTypesString() string {
	return fmt.Sprintf("%s, %s, %s", PersistenceTypeMemory, PersistenceTypeBadger, PersistenceTypeRedis)
}
