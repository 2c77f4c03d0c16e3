package storage

import (
	"context"
	"errors"
	"fmt"

	"tracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV 基于 gorm 的键值存储（kv_entries 表）
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	err := g.db.WithContext(ctx).Where("name = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

func (g *GormKV) Put(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{Name: key, Value: string(value)}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
