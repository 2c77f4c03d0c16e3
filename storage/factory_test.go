package storage

import (
	"path/filepath"
	"testing"

	"tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		driver string
		want   any
	}{
		{config.DriverMemory, &MemoryKV{}},
		{config.DriverFile, &FileKV{}},
		{config.DriverSQLite, &SQLiteKV{}},
	}
	for _, tc := range cases {
		cfg := &config.Config{Storage: config.StorageConfig{
			Driver:     tc.driver,
			DataDir:    filepath.Join(dir, "files"),
			SQLitePath: filepath.Join(dir, "tracker.db"),
		}}
		kv, closeFn, err := Open(cfg)
		require.NoError(t, err, tc.driver)
		assert.IsType(t, tc.want, kv, tc.driver)
		assert.NoError(t, closeFn())
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(&config.Config{Storage: config.StorageConfig{Driver: "redis"}})
	assert.Error(t, err)
}
