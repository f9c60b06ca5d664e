package repositories

import (
	"context"
	"strconv"

	"github.com/trebekbot/trebekbot/internal/store"
	"github.com/trebekbot/trebekbot/pkg/errors"
)

// ScoreRepository is the per-user running total. Scores are signed and have
// no bounds.
type ScoreRepository struct {
	kv store.KV
}

func NewScoreRepository(kv store.KV) *ScoreRepository {
	return &ScoreRepository{kv: kv}
}

func scoreKey(userID string) string {
	return "user_score:" + userID
}

// Get returns the user's score. A user seen for the first time is stored
// with a score of 0.
func (r *ScoreRepository) Get(ctx context.Context, userID string) (int64, error) {
	raw, err := r.kv.Get(ctx, scoreKey(userID))
	if errors.Is(err, store.ErrNotFound) {
		if err := r.kv.Set(ctx, scoreKey(userID), "0"); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	score, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDecode, "malformed score for user "+userID)
	}
	return score, nil
}

// ApplyDelta adds delta to the user's score and returns the new total.
func (r *ScoreRepository) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	return r.kv.IncrBy(ctx, scoreKey(userID), delta)
}
