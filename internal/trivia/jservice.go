package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/trebekbot/trebekbot/internal/models"
	"github.com/trebekbot/trebekbot/pkg/errors"
)

// JService reads clues from a jService-compatible HTTP API.
type JService struct {
	client *http.Client
	url    string
}

func NewJService(client *http.Client, url string) *JService {
	return &JService{client: client, url: url}
}

type jserviceClue struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Value    *int64 `json:"value"`
	Category struct {
		Title string `json:"title"`
	} `json:"category"`
}

func (j *JService) RandomQuestion(ctx context.Context) (*models.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to build trivia request")
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstream, "trivia request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeUpstream, fmt.Sprintf("trivia api returned %d", resp.StatusCode))
	}

	var clues []jserviceClue
	if err := json.NewDecoder(resp.Body).Decode(&clues); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDecode, "malformed trivia response")
	}
	if len(clues) == 0 {
		return &models.Question{}, nil
	}

	clue := clues[0]
	question := &models.Question{
		ID:       clue.ID,
		Category: clue.Category.Title,
		Prompt:   clue.Question,
		Answer:   clue.Answer,
	}
	if clue.Value != nil {
		question.Value = *clue.Value
	}
	return question, nil
}
