package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{DeviceSecret: "secret"},
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{Credentials: Credentials{Backend: BackendSQLite, DSN: "creds.db"}},
		Workers: ClientWorkers{QueueSize: 1},
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown backend", mutate: func(c *ClientConfig) { c.Storage.Credentials.Backend = "redis" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite without dsn", mutate: func(c *ClientConfig) { c.Storage.Credentials.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "file without secret", mutate: func(c *ClientConfig) {
			c.Storage.Credentials.Backend = BackendFile
			c.App.DeviceSecret = ""
		}, wantErr: ErrInvalidAppConfigs},
		{name: "memory needs nothing", mutate: func(c *ClientConfig) {
			c.Storage.Credentials = Credentials{Backend: BackendMemory}
			c.App.DeviceSecret = ""
		}},
		{name: "negative queue", mutate: func(c *ClientConfig) { c.Workers.QueueSize = -1 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromFlags(t *testing.T) {
	cfg, err := GetClientConfig(Flags{
		APIAddress:   "https://til.example.com",
		StoreBackend: BackendMemory,
		LogLevel:     "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://til.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, BackendMemory, cfg.Storage.Credentials.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, defaultQueueSize, cfg.Workers.QueueSize)
}

func TestGetClientConfig_DefaultBackendNeedsSecret(t *testing.T) {
	_, err := GetClientConfig(Flags{})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_SecretFromEnv(t *testing.T) {
	t.Setenv("TIL_APP_DEVICE_SECRET", "from-env")

	cfg, err := GetClientConfig(Flags{StoreDSN: "/tmp/creds.db"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.DeviceSecret)
	assert.Equal(t, "/tmp/creds.db", cfg.Storage.Credentials.DSN)
}
