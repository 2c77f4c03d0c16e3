// Package storage 提供本地键值存储，记录集合以 JSON 形式整体保存在单个键下。
package storage

import (
	"context"
	"errors"
)

// ErrNotFound 键不存在
var ErrNotFound = errors.New("storage: key not found")

// KV 键值存储
type KV interface {
	// Get 读取键值，键不存在时返回 ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Put 整体覆盖写入
	Put(ctx context.Context, key string, value []byte) error
}
