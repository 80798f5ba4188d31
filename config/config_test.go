package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "DB_ENABLED", "DB_PORT", "MESSAGE_TOKEN", "ADMIN_ID"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "release", cfg.HTTP.GinMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.False(t, cfg.DB.Enabled)
	assert.Empty(t, cfg.Telegram.MessageToken)
	assert.Zero(t, cfg.Telegram.AdminChatID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_ENABLED", "TRUE")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("ADMIN_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.DB.Enabled)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, int64(42), cfg.Telegram.AdminChatID)
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{" True ", true},
		{"0", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Setenv("FLAG_UNDER_TEST", tt.val)
		if got := getBool("FLAG_UNDER_TEST"); got != tt.want {
			t.Errorf("getBool(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}
