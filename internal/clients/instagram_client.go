package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"commentpulse/internal/models"
)

const INSTAGRAM_MEDIA_URL = "https://www.ddinstagram.com"

// InstagramClient fetches a post's parent comments through the mirror's
// graphql media endpoint. No credentials required.
type InstagramClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewInstagramClient() *InstagramClient {
	return &InstagramClient{
		BaseURL:    INSTAGRAM_MEDIA_URL,
		HTTPClient: &http.Client{Timeout: REQUEST_TIMEOUT},
	}
}

func (ic *InstagramClient) FetchMediaComments(ctx context.Context, shortcode string) (*models.InstagramMediaResponse, error) {
	url := fmt.Sprintf("%s/p/%s/?__a=1&__d=1", ic.BaseURL, shortcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := ic.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[InstagramClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[InstagramClient] API returned status code %d", resp.StatusCode)
	}

	var media models.InstagramMediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return nil, fmt.Errorf("[InstagramClient] Failed to decode response: %w", err)
	}

	return &media, nil
}
