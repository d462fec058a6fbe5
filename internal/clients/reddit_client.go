package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"commentpulse/internal/models"
)

const (
	REDDIT_AUTH_URL   = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL    = "https://oauth.reddit.com"
	REDDIT_PUBLIC_URL = "https://www.reddit.com"
)

// RedditClient fetches a post's comment listing. With client credentials it
// goes through the OAuth API host; without them it falls back to the public
// .json endpoint.
type RedditClient struct {
	Config  *clientcredentials.Config
	Client  *http.Client
	BaseURL string
	mu      sync.Mutex
}

func NewRedditClient(clientID, clientSecret string) *RedditClient {
	rc := &RedditClient{BaseURL: REDDIT_PUBLIC_URL}

	if clientID != "" && clientSecret != "" {
		rc.Config = &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     REDDIT_AUTH_URL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		rc.Client = rc.Config.Client(context.Background())
		rc.Client.Timeout = REQUEST_TIMEOUT
		rc.BaseURL = REDDIT_API_URL
	} else {
		rc.Client = &http.Client{Timeout: REQUEST_TIMEOUT}
	}

	return rc
}

func (rc *RedditClient) refreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.Config != nil {
		rc.Client = rc.Config.Client(context.Background())
		rc.Client.Timeout = REQUEST_TIMEOUT
	}
}

// FetchPostComments returns the raw listing array for a post path such as
// "/r/golang/comments/abc123/some_title".
func (rc *RedditClient) FetchPostComments(ctx context.Context, postPath string) ([]models.RedditListing, error) {
	target := rc.BaseURL + strings.TrimSuffix(postPath, "/") + ".json"

	return rc.fetchListings(ctx, target, 0)
}

func (rc *RedditClient) fetchListings(ctx context.Context, target string, attempt int) ([]models.RedditListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if attempt >= MAX_RETRIES {
			return nil, fmt.Errorf("[RedditClient] Unauthorized after token refresh")
		}
		slog.Warn("[RedditClient] Token expired - Refreshing and Retrying...")
		rc.refreshClient()
		return rc.fetchListings(ctx, target, attempt+1)
	case http.StatusTooManyRequests:
		if attempt >= MAX_RETRIES {
			return nil, fmt.Errorf("[RedditClient] Max retries reached, request failed")
		}
		backoff := INITIAL_BACKOFF << attempt
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}
		slog.Warn("[RedditClient] 429 Too Many Requests - Retrying with backoff",
			slog.Int("attempt", attempt+1), slog.Duration("backoff", backoff))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		return rc.fetchListings(ctx, target, attempt+1)
	case http.StatusOK:
	default:
		return nil, fmt.Errorf("[RedditClient] Unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var listings []models.RedditListing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to decode listing: %w", err)
	}

	return listings, nil
}
