package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal storage error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal storage error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal storage error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "transactions", cfg.Storage.Key)
	assert.False(t, cfg.JWT.Enabled)
	assert.Equal(t, 720*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Same(t, cfg, GetConfig())
}

func TestLoadConfig_ExternalFileAndEnv(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage:\n  driver: sqlite\n  sqlite_path: /tmp/ledger.db\nserver:\n  mode: release\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("TRACKER_SERVER_PORT", ":9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/ledger.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Driver: DriverMemory}}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Storage: StorageConfig{Driver: "redis"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")

	cfg = &Config{Storage: StorageConfig{Driver: DriverFile}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{
		Storage: StorageConfig{Driver: DriverMemory},
		JWT:     JWTConfig{Enabled: true},
	}
	assert.Error(t, cfg.Validate())
}

func TestGetConfig_PanicsWhenNotLoaded(t *testing.T) {
	GlobalConfig = nil
	assert.Panics(t, func() { GetConfig() })
}
