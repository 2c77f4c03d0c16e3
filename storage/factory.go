package storage

import (
	"fmt"

	"tracker/config"
	"tracker/database"

	"github.com/spf13/afero"
)

// Open 按配置创建存储，返回的 close 函数用于释放底层连接
func Open(cfg *config.Config) (KV, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return NewMemoryKV(), noop, nil
	case config.DriverFile:
		kv, err := NewFileKV(afero.NewOsFs(), cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil
	case config.DriverSQLite:
		kv, err := NewSQLiteKV(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case config.DriverMySQL:
		if err := database.Init(cfg); err != nil {
			return nil, nil, err
		}
		return NewGormKV(database.GetDB()), database.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
