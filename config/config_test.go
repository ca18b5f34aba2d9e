package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fave/auth"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "fave.db", cfg.Store.Path)
	assert.Equal(t, auth.ProviderGoogle, cfg.Auth.Kind)
	assert.Equal(t, auth.DefaultSessionTTL, cfg.Session.TTL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FAVE_ADDR", ":9090")
	t.Setenv("FAVE_STORE_DRIVER", StoreMemory)
	t.Setenv("FAVE_AUTH_PROVIDER", auth.ProviderWallet)
	t.Setenv("FAVE_SESSION_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, auth.ProviderWallet, cfg.Auth.Kind)
	assert.Equal(t, "2h0m0s", cfg.Session.TTL.String())
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fave.yaml")
	content := `
addr: ":7070"
store:
  driver: sqlite
  path: /tmp/test-fave.db
auth:
  kind: static
  static_credentials:
    dev-key: Dev User
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("FAVE_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "/tmp/test-fave.db", cfg.Store.Path)
	assert.Equal(t, auth.ProviderStatic, cfg.Auth.Kind)
	assert.Equal(t, "Dev User", cfg.Auth.StaticCredentials["dev-key"])
}

func TestEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fave.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`addr: ":7070"`), 0o644))
	t.Setenv("FAVE_CONFIG_PATH", path)
	t.Setenv("FAVE_ADDR", ":6060")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown driver",
			env:  map[string]string{"FAVE_STORE_DRIVER": "dynamo"},
		},
		{
			name: "postgres without url",
			env:  map[string]string{"FAVE_STORE_DRIVER": StorePostgres, "DATABASE_URL": ""},
		},
		{
			name: "bad ttl",
			env:  map[string]string{"FAVE_SESSION_TTL": "soon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
