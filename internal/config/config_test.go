package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/config"
)

func TestInitConfig(t *testing.T) {
	datadir := t.TempDir()
	t.Setenv("POOLING_DATADIR", datadir)
	t.Setenv("POOLING_AUTH_SECRET", "secret")

	err := config.InitConfig()
	require.NoError(t, err)

	require.Equal(t, 9090, config.GetInt(config.ListeningPortKey))
	require.Equal(t, datadir, config.GetDatadir())
	require.Equal(t, "badger", config.GetString(config.DBTypeKey))
	require.Equal(t, config.CustodyInMemory, config.GetString(config.CustodyTypeKey))
	require.Equal(t, 15*time.Second, config.GetDuration(config.CustodyTimeoutKey))
	require.Equal(t, []string{"*"}, config.GetStringSlice(config.CORSAllowedOriginsKey))

	_, err = os.Stat(filepath.Join(datadir, config.DbLocation))
	require.NoError(t, err)
}

func TestCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "comma_separated",
			value:    "https://a.io,https://b.io",
			expected: []string{"https://a.io", "https://b.io"},
		},
		{
			name:     "space_separated",
			value:    "https://a.io https://b.io",
			expected: []string{"https://a.io", "https://b.io"},
		},
		{
			name:     "mixed",
			value:    "https://a.io, https://b.io,,https://c.io",
			expected: []string{"https://a.io", "https://b.io", "https://c.io"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POOLING_DATADIR", t.TempDir())
			t.Setenv("POOLING_NO_AUTH", "true")
			t.Setenv("POOLING_CORS_ALLOWED_ORIGINS", tt.value)

			err := config.InitConfig()
			require.NoError(t, err)
			require.Equal(
				t, tt.expected, config.GetStringSlice(config.CORSAllowedOriginsKey),
			)
		})
	}
}

func TestInitConfigFailing(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing_auth_secret",
			env:  map[string]string{},
		},
		{
			name: "unknown_db_type",
			env: map[string]string{
				"POOLING_NO_AUTH": "true",
				"POOLING_DB_TYPE": "postgres",
			},
		},
		{
			name: "remote_custody_without_address",
			env: map[string]string{
				"POOLING_NO_AUTH":      "true",
				"POOLING_CUSTODY_TYPE": "remote",
			},
		},
		{
			name: "unknown_custody_type",
			env: map[string]string{
				"POOLING_NO_AUTH":      "true",
				"POOLING_CUSTODY_TYPE": "vault",
			},
		},
		{
			name: "invalid_port",
			env: map[string]string{
				"POOLING_NO_AUTH":        "true",
				"POOLING_LISTENING_PORT": "70000",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POOLING_DATADIR", t.TempDir())
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			err := config.InitConfig()
			require.Error(t, err)
		})
	}
}
