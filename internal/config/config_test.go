package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_MissingFileUsesDefaults(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "none.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "csv", s.Storage().Backend())
	assert.Equal(t, "expenses.csv", filepath.Base(s.Storage().CSVPath()))
	assert.Equal(t, "₹", s.App().CurrencySymbol())
	assert.Equal(t, 4, s.App().RecentMonths())
	assert.False(t, s.Kafka().Enabled())
	assert.False(t, s.Memcached().Enabled())
	assert.Equal(t, "disable", s.Postgres().SSLMode())
}

func Test_New_ShouldOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  currency-symbol: "$"
storage:
  backend: sqlite
  sqlite-path: /var/lib/ledger.db
telegram:
  token: secret
  allowed-chats: [42, 7]
kafka:
  brokers: ["localhost:9092"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, "$", s.App().CurrencySymbol())
	assert.Equal(t, 4, s.App().RecentMonths())
	assert.Equal(t, "sqlite", s.Storage().Backend())
	assert.Equal(t, "/var/lib/ledger.db", s.Storage().SQLitePath())
	assert.Equal(t, "secret", s.Telegram().Token())
	assert.Equal(t, []int64{42, 7}, s.Telegram().AllowedChats())
	assert.True(t, s.Kafka().Enabled())
	assert.Equal(t, "expense-reports", s.Kafka().ReportsTopic())
}

func Test_New_ShouldFailOnBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := New(path)

	assert.Error(t, err)
}

func Test_Path_ShouldHonourEnv(t *testing.T) {
	t.Setenv(configEnvKey, "/etc/ledger.yaml")
	assert.Equal(t, "/etc/ledger.yaml", Path())

	t.Setenv(configEnvKey, "")
	assert.Equal(t, defaultConfigFile, Path())
}
