package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, ProfileStoreSupabase, cfg.ProfileStore)
	assert.True(t, cfg.PaymentGatewayMock)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/kv.sqlite")
	t.Setenv("ENV", "production")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/kv.sqlite", cfg.SQLitePath)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	base := Config{AppPort: "8080", OwnerID: "me", StorageBackend: BackendMemory, ProfileStore: ProfileStoreSupabase}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"unknown backend":      func(c *Config) { c.StorageBackend = "etcd" },
		"file without dir":     func(c *Config) { c.StorageBackend = BackendFile },
		"firestore no project": func(c *Config) { c.ProfileStore = ProfileStoreFirestore },
		"missing port":         func(c *Config) { c.AppPort = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
