package repositories

import (
	"context"
	"encoding/json"

	"github.com/trebekbot/trebekbot/internal/models"
	"github.com/trebekbot/trebekbot/internal/store"
	"github.com/trebekbot/trebekbot/pkg/errors"
)

// RoundRepository holds at most one active question per channel. There is no
// TTL; a question stays active until cleared.
//
// Reads and writes are not coordinated, so two requests racing on the same
// channel resolve as last-write-wins.
type RoundRepository struct {
	kv store.KV
}

func NewRoundRepository(kv store.KV) *RoundRepository {
	return &RoundRepository{kv: kv}
}

func roundKey(channelID string) string {
	return "current_question:" + channelID
}

// Active returns the channel's question, or nil when the channel is idle.
func (r *RoundRepository) Active(ctx context.Context, channelID string) (*models.Question, error) {
	raw, err := r.kv.Get(ctx, roundKey(channelID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var question models.Question
	if err := json.Unmarshal([]byte(raw), &question); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDecode, "malformed round for channel "+channelID)
	}
	return &question, nil
}

// SetActive replaces whatever question the channel had.
func (r *RoundRepository) SetActive(ctx context.Context, channelID string, question *models.Question) error {
	data, err := json.Marshal(question)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to encode question")
	}
	return r.kv.Set(ctx, roundKey(channelID), string(data))
}

func (r *RoundRepository) ClearActive(ctx context.Context, channelID string) error {
	return r.kv.Del(ctx, roundKey(channelID))
}
