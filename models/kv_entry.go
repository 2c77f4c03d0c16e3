package models

import "time"

// KVEntry 键值存储条目，整个记录集合序列化后存放在单个键下
type KVEntry struct {
	Name      string    `json:"name" gorm:"primaryKey;size:191"`
	Value     string    `json:"value" gorm:"type:longtext;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
