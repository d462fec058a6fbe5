package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"commentpulse/internal/clients"
	"commentpulse/internal/models"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=abc_-123&t=42s", "abc_-123"},
		{"https://example.com/watch", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractVideoID(tc.url); got != tc.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func threadsPage(nextToken string, ids ...string) models.YouTubeCommentThreadsResponse {
	page := models.YouTubeCommentThreadsResponse{NextPageToken: nextToken}
	for _, id := range ids {
		item := models.YouTubeThreadItem{ID: id}
		item.Snippet.TopLevelComment.Snippet = models.YouTubeCommentSnippet{
			AuthorDisplayName: "author-" + id,
			TextDisplay:       "text-" + id,
			LikeCount:         1,
			PublishedAt:       "2024-05-01T12:00:00Z",
		}
		page.Items = append(page.Items, item)
	}
	return page
}

func newYouTubeTestServer(t *testing.T, pages map[string]models.YouTubeCommentThreadsResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Query().Get("pageToken")]
		if !ok {
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
			http.Error(w, "bad token", http.StatusBadRequest)
			return
		}
		if err := json.NewEncoder(w).Encode(page); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
}

func newTestAdapter(serverURL string) *YouTubeAdapter {
	client := clients.NewYouTubeClient("test-key")
	client.BaseURL = serverURL
	return NewYouTubeAdapter(client)
}

func TestYouTubeFetchPaginates(t *testing.T) {
	server := newYouTubeTestServer(t, map[string]models.YouTubeCommentThreadsResponse{
		"":      threadsPage("page2", "c1", "c2"),
		"page2": threadsPage("", "c3"),
	})
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	raw, err := adapter.Fetch(context.Background(), "https://youtu.be/vid123", 10)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("got %d comments, want 3", len(raw))
	}
	for i, id := range []string{"c1", "c2", "c3"} {
		if raw[i].YouTube == nil || raw[i].YouTube.CommentID != id {
			t.Errorf("comment %d = %+v, want ID %q", i, raw[i].YouTube, id)
		}
		if raw[i].Platform != models.PlatformYouTube {
			t.Errorf("comment %d platform = %q", i, raw[i].Platform)
		}
	}
	if raw[0].YouTube.VideoID != "vid123" {
		t.Errorf("VideoID = %q, want vid123", raw[0].YouTube.VideoID)
	}
}

func TestYouTubeFetchTruncatesFinalPage(t *testing.T) {
	server := newYouTubeTestServer(t, map[string]models.YouTubeCommentThreadsResponse{
		"": threadsPage("more", "c1", "c2", "c3", "c4"),
	})
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	raw, err := adapter.Fetch(context.Background(), "https://youtu.be/vid123", 2)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("got %d comments, want the bound of 2", len(raw))
	}
}

func TestYouTubeFetchInvalidURL(t *testing.T) {
	adapter := newTestAdapter("http://unused")

	raw, err := adapter.Fetch(context.Background(), "https://example.com/nope", 10)
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
	var typed *FetchError
	if !errors.As(err, &typed) {
		t.Fatalf("error %v is not a FetchError", err)
	}
	if typed.Platform != models.PlatformYouTube {
		t.Errorf("Platform = %q", typed.Platform)
	}
	if len(raw) != 0 {
		t.Errorf("got %d comments, want 0", len(raw))
	}
}

func TestYouTubeFetchKeepsEarlierPagesOnFailure(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(threadsPage("page2", "c1", "c2"))
			return
		}
		json.NewEncoder(w).Encode(models.YouTubeCommentThreadsResponse{
			Error: &models.YouTubeAPIError{Code: 403, Message: "quotaExceeded"},
		})
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	raw, err := adapter.Fetch(context.Background(), "https://youtu.be/vid123", 10)
	if err == nil {
		t.Fatal("expected error from failing second page")
	}
	if len(raw) != 2 {
		t.Errorf("got %d comments, want the 2 from the first page", len(raw))
	}
}

func TestYouTubeFetchSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":403,"message":"commentsDisabled"}}`)
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	_, err := adapter.Fetch(context.Background(), "https://youtu.be/vid123", 10)
	if err == nil {
		t.Fatal("expected error for disabled comments")
	}
}
