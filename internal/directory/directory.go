// Package directory turns Slack user IDs into the names the host addresses
// contestants by.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/trebekbot/trebekbot/internal/store"
	"github.com/trebekbot/trebekbot/pkg/errors"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

// NameTTL is how long a resolved name stays cached.
const NameTTL = time.Hour

const defaultUsersListURL = "https://slack.com/api/users.list"

// Resolver returns the name to address userID by. It never fails; fallback is
// returned whenever no better name is known.
type Resolver interface {
	DisplayName(ctx context.Context, userID, fallback string) string
}

// Passthrough is used when no directory token is configured.
type Passthrough struct{}

func (Passthrough) DisplayName(_ context.Context, _ string, fallback string) string {
	return fallback
}

// Lookup fetches a user's first name from the directory. ok is false when
// the directory answered but had nothing usable.
type Lookup interface {
	FirstName(ctx context.Context, userID string) (name string, ok bool, err error)
}

// Slack queries the users.list Web API method.
type Slack struct {
	client  *http.Client
	token   string
	baseURL string
}

func NewSlack(client *http.Client, token string) *Slack {
	return &Slack{client: client, token: token, baseURL: defaultUsersListURL}
}

type usersListResponse struct {
	OK      bool `json:"ok"`
	Members []struct {
		ID      string `json:"id"`
		Profile struct {
			FirstName string `json:"first_name"`
		} `json:"profile"`
	} `json:"members"`
}

func (s *Slack) FirstName(ctx context.Context, userID string) (string, bool, error) {
	endpoint := s.baseURL + "?token=" + url.QueryEscape(s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to build users.list request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrCodeUpstream, "users.list request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, errors.New(errors.ErrCodeUpstream, fmt.Sprintf("users.list returned %d", resp.StatusCode))
	}

	var body usersListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", false, errors.Wrap(err, errors.ErrCodeDecode, "malformed users.list response")
	}
	if !body.OK {
		return "", false, nil
	}

	for _, m := range body.Members {
		if m.ID == userID {
			if m.Profile.FirstName == "" {
				return "", false, nil
			}
			return m.Profile.FirstName, true, nil
		}
	}
	return "", false, nil
}

// Cached consults the key-value store before the directory and remembers
// every answer the directory gives for NameTTL, including fallbacks.
type Cached struct {
	kv     store.KV
	lookup Lookup
}

func NewCached(kv store.KV, lookup Lookup) *Cached {
	return &Cached{kv: kv, lookup: lookup}
}

func nameKey(userID string) string {
	return "user_names:" + userID
}

func (c *Cached) DisplayName(ctx context.Context, userID, fallback string) string {
	name, err := c.kv.Get(ctx, nameKey(userID))
	if err == nil {
		return name
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.Warn("Name cache unavailable", "user_id", userID, "error", err)
		return fallback
	}

	first, ok, err := c.lookup.FirstName(ctx, userID)
	if err != nil {
		logger.Warn("User directory lookup failed", "user_id", userID, "error", err)
		return fallback
	}

	name = fallback
	if ok {
		name = first
	}
	if err := c.kv.SetEX(ctx, nameKey(userID), NameTTL, name); err != nil {
		logger.Warn("Failed to cache display name", "user_id", userID, "error", err)
	}
	return name
}
