package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// KVEntry is one key of the SQL-backed key-value store.
type KVEntry struct {
	Key       string     `gorm:"column:kv_key;primaryKey;type:varchar(255)"`
	Value     string     `gorm:"column:kv_value;type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Expired reports whether the entry's TTL has passed at now.
func (e *KVEntry) Expired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// BeforeSave rejects keys the Redis backend could not hold either.
func (e *KVEntry) BeforeSave(tx *gorm.DB) error {
	if e.Key == "" {
		return fmt.Errorf("kv entry key is required")
	}
	if len(e.Key) > 255 {
		return fmt.Errorf("kv entry key too long: %d bytes", len(e.Key))
	}
	return nil
}
