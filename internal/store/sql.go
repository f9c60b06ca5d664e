package store

import (
	"context"
	"strconv"
	"time"

	"github.com/trebekbot/trebekbot/internal/models"
	"github.com/trebekbot/trebekbot/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQL keeps keys in the kv_entries table. Expired rows are hidden on read and
// removed lazily.
type SQL struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db, now: time.Now}
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStoreUnavailable, "sql get "+key)
	}

	if entry.Expired(s.now()) {
		if err := s.Del(ctx, key); err != nil {
			return "", err
		}
		return "", ErrNotFound
	}
	return entry.Value, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	return s.upsert(ctx, &models.KVEntry{Key: key, Value: value})
}

func (s *SQL) SetEX(ctx context.Context, key string, ttl time.Duration, value string) error {
	expiresAt := s.now().Add(ttl)
	return s.upsert(ctx, &models.KVEntry{Key: key, Value: value, ExpiresAt: &expiresAt})
}

func (s *SQL) Del(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("kv_key = ?", key).Delete(&models.KVEntry{}).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "sql del "+key)
	}
	return nil
}

// IncrBy locks the row on postgres so concurrent deltas are not lost. SQLite
// serializes writers on its own.
func (s *SQL) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := &models.KVEntry{Key: key, Value: "0"}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
			return err
		}

		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var entry models.KVEntry
		if err := query.Where("kv_key = ?", key).First(&entry).Error; err != nil {
			return err
		}

		var current int64
		if entry.Expired(s.now()) {
			entry.ExpiresAt = nil
		} else {
			parsed, err := strconv.ParseInt(entry.Value, 10, 64)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeDecode, "value at "+key+" is not an integer")
			}
			current = parsed
		}

		total = current + delta
		// Model(&entry) scopes the update to the locked row by primary key.
		return tx.Model(&entry).Updates(map[string]interface{}{
			"kv_value":   strconv.FormatInt(total, 10),
			"expires_at": entry.ExpiresAt,
		}).Error
	})
	if err != nil {
		var appErr *errors.AppError
		if errors.As(err, &appErr) {
			return 0, appErr
		}
		return 0, errors.Wrap(err, errors.ErrCodeStoreUnavailable, "sql incrby "+key)
	}
	return total, nil
}

func (s *SQL) upsert(ctx context.Context, entry *models.KVEntry) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "expires_at", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "sql set "+entry.Key)
	}
	return nil
}

func (s *SQL) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "sql handle")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "sql ping")
	}
	return nil
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
