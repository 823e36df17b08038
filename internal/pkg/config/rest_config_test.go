//go:build unit
// +build unit

package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: "9090"
environment: production
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
blob_connector:
  cloud_provider: local
  local_path: /tmp/servicehub-blobs
identity:
  provider: insecure
notifications:
  queue: direct
assistant:
  provider: disabled
auth:
  session_ttl: 2h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TTL())
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICEHUB_PORT", "7070")
	t.Setenv("SERVICEHUB_DB_DSN", "file:override.db")

	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "file:override.db", cfg.Database.DSN)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := InitializeRestConfig(writeConfig(t, "port: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("kafka queue without brokers", func(t *testing.T) {
		_, err := InitializeRestConfig(writeConfig(t, strings.Replace(testConfigYAML, "queue: direct", "queue: kafka", 1)))
		assert.Error(t, err)
	})
}

func TestDocumentSettings_Key(t *testing.T) {
	valid := base64.StdEncoding.EncodeToString(make([]byte, 32))

	settings := &DocumentSettings{EncryptionKey: valid}
	key, err := settings.Key()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	settings = &DocumentSettings{EncryptionKey: base64.StdEncoding.EncodeToString([]byte("short"))}
	_, err = settings.Key()
	assert.Error(t, err)

	settings = &DocumentSettings{}
	key, err = settings.Key()
	require.NoError(t, err)
	assert.Nil(t, key)
	assert.Equal(t, int64(10<<20), settings.MaxFileSize())
}

func TestIdentitySettings_Validate(t *testing.T) {
	assert.NoError(t, (&IdentitySettings{Provider: InsecureIdentityProvider}).Validate())
	assert.Error(t, (&IdentitySettings{Provider: IdentityToolkitProvider}).Validate())
	assert.NoError(t, (&IdentitySettings{Provider: IdentityToolkitProvider, APIKey: "key"}).Validate())
	assert.Error(t, (&IdentitySettings{Provider: "unknown"}).Validate())
}

func TestNotificationSettings_Validate(t *testing.T) {
	settings := &NotificationSettings{Queue: QueueDirect}
	assert.NoError(t, settings.Validate())

	settings = &NotificationSettings{Queue: QueueDirect, Email: EmailSettings{Enabled: true, Host: "smtp.local", Port: 25}}
	assert.Error(t, settings.Validate())

	settings = &NotificationSettings{
		Queue: QueueKafka,
		Kafka: KafkaSettings{Brokers: []string{"localhost:9092"}, Topic: "notifications", GroupID: "servicehub"},
	}
	assert.NoError(t, settings.Validate())
}
