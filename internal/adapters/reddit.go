package adapters

import (
	"context"
	"fmt"
	"net/url"

	"commentpulse/internal/clients"
	"commentpulse/internal/models"
)

type RedditAdapter struct {
	client *clients.RedditClient
}

func NewRedditAdapter(client *clients.RedditClient) *RedditAdapter {
	return &RedditAdapter{client: client}
}

func (a *RedditAdapter) Platform() models.Platform { return models.PlatformReddit }

// Fetch loads a post's comment listing. Reddit returns the full tree in one
// response, so there is no pagination loop; only t1 (comment) children are
// kept.
func (a *RedditAdapter) Fetch(ctx context.Context, sourceRef string, maxResults int) ([]models.RawComment, error) {
	comments := []models.RawComment{}

	postPath, err := extractPostPath(sourceRef)
	if err != nil {
		return comments, &FetchError{Platform: a.Platform(), Reason: "invalid post URL", Err: err}
	}

	listings, err := a.client.FetchPostComments(ctx, postPath)
	if err != nil {
		return comments, &FetchError{Platform: a.Platform(), Reason: "comment listing request failed", Err: err}
	}

	// The first listing describes the post itself; comments are in the
	// second.
	if len(listings) < 2 {
		return comments, nil
	}

	for _, child := range listings[1].Data.Children {
		if len(comments) >= maxResults {
			break
		}
		if child.Kind != "t1" {
			continue
		}
		raw := child.Data
		comments = append(comments, models.RawComment{
			Platform: models.PlatformReddit,
			Reddit:   &raw,
		})
	}

	return comments, nil
}

func extractPostPath(sourceRef string) (string, error) {
	parsed, err := url.Parse(sourceRef)
	if err != nil {
		return "", err
	}
	if parsed.Path == "" || parsed.Path == "/" {
		return "", fmt.Errorf("no post path in %q", sourceRef)
	}
	return parsed.Path, nil
}
