package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"commentpulse/internal/models"
)

const YOUTUBE_COMMENT_THREADS_URL = "https://www.googleapis.com/youtube/v3/commentThreads"

const youtubePageSize = 100

// YouTubeClient fetches top-level comment threads from the Data API. One
// call returns one page; callers follow NextPageToken.
type YouTubeClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		APIKey:  apiKey,
		BaseURL: YOUTUBE_COMMENT_THREADS_URL,
		Client:  &http.Client{Timeout: REQUEST_TIMEOUT},
	}
}

func (yc *YouTubeClient) FetchCommentThreads(ctx context.Context, videoID, pageToken string) (*models.YouTubeCommentThreadsResponse, error) {
	if yc.APIKey == "" {
		return nil, fmt.Errorf("[YouTubeClient] API key is missing")
	}

	parsedUrl, err := url.Parse(yc.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("part", "snippet")
	queryParams.Add("videoId", videoID)
	queryParams.Add("key", yc.APIKey)
	queryParams.Add("maxResults", strconv.Itoa(youtubePageSize))
	queryParams.Add("textFormat", "plainText")
	if pageToken != "" {
		queryParams.Add("pageToken", pageToken)
	}
	parsedUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := yc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		time.Sleep(INITIAL_BACKOFF)
		return nil, fmt.Errorf("[YouTubeClient] 429 Too Many Requests")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var threads models.YouTubeCommentThreadsResponse
	if err := json.Unmarshal(body, &threads); err != nil {
		return nil, fmt.Errorf("[YouTubeClient] Failed to decode response: %w", err)
	}
	if threads.Error != nil {
		return nil, fmt.Errorf("[YouTubeClient] API error %d: %s", threads.Error.Code, threads.Error.Message)
	}

	return &threads, nil
}
