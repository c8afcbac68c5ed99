package config

import (
	"fmt"
	"strings"
)

// SessionStoreKind selects where sessions are persisted.
type SessionStoreKind string

const (
	// SessionStoreRedis keeps sessions in Redis (shared across instances, survives restarts).
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStoreMemory keeps sessions in process memory (single instance, dev).
	SessionStoreMemory SessionStoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (k *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "memory":
		*k = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreKind: %q (valid options: redis, memory)", v)
	}
}

// SessionConfig controls session persistence.
type SessionConfig struct {
	Store     SessionStoreKind `env:"SESSION_STORE"      envDefault:"memory"`
	KeyPrefix string           `env:"SESSION_KEY_PREFIX" envDefault:"portal:session:"`
}

// Sanitize restores the default prefix when blank.
func (s *SessionConfig) Sanitize() {
	if strings.TrimSpace(s.KeyPrefix) == "" {
		s.KeyPrefix = "portal:session:"
	}
	if s.Store == "" {
		s.Store = SessionStoreMemory
	}
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelPort       string   `env:"SENTINEL_PORT"        envDefault:"26379"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}
