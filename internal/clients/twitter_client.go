package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"commentpulse/internal/models"
)

const TWITTER_REPLIES_URL = "https://api.tweetpik.com/v2"

// TwitterClient fetches replies to a tweet. The bearer token is optional for
// the public replies endpoint but sent when configured.
type TwitterClient struct {
	BearerToken string
	BaseURL     string
	HTTPClient  *http.Client
}

func NewTwitterClient(bearerToken string) *TwitterClient {
	return &TwitterClient{
		BearerToken: bearerToken,
		BaseURL:     TWITTER_REPLIES_URL,
		HTTPClient:  &http.Client{Timeout: REQUEST_TIMEOUT},
	}
}

func (tc *TwitterClient) FetchReplies(ctx context.Context, tweetID string, count int) (*models.TwitterRepliesResponse, error) {
	url := fmt.Sprintf("%s/tweet/%s/replies?count=%d", tc.BaseURL, tweetID, count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)
	if tc.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.BearerToken)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[TwitterClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[TwitterClient] API returned status code %d", resp.StatusCode)
	}

	var replies models.TwitterRepliesResponse
	if err := json.NewDecoder(resp.Body).Decode(&replies); err != nil {
		return nil, fmt.Errorf("[TwitterClient] Failed to decode response: %w", err)
	}

	return &replies, nil
}
