package adapters

import (
	"context"
	"regexp"

	"commentpulse/internal/clients"
	"commentpulse/internal/models"
)

var tweetIDPattern = regexp.MustCompile(`status(?:es)?/(\d+)`)

// ExtractTweetID pulls the numeric status ID out of a tweet URL.
func ExtractTweetID(url string) string {
	if match := tweetIDPattern.FindStringSubmatch(url); match != nil {
		return match[1]
	}
	return ""
}

type TwitterAdapter struct {
	client *clients.TwitterClient
}

func NewTwitterAdapter(client *clients.TwitterClient) *TwitterAdapter {
	return &TwitterAdapter{client: client}
}

func (a *TwitterAdapter) Platform() models.Platform { return models.PlatformTwitter }

func (a *TwitterAdapter) Fetch(ctx context.Context, sourceRef string, maxResults int) ([]models.RawComment, error) {
	comments := []models.RawComment{}

	tweetID := ExtractTweetID(sourceRef)
	if tweetID == "" {
		return comments, &FetchError{Platform: a.Platform(), Reason: "invalid tweet URL"}
	}

	count := maxResults
	if count > 100 {
		count = 100
	}
	replies, err := a.client.FetchReplies(ctx, tweetID, count)
	if err != nil {
		return comments, &FetchError{Platform: a.Platform(), Reason: "replies request failed", Err: err}
	}

	for _, reply := range replies.Data {
		if len(comments) >= maxResults {
			break
		}
		comments = append(comments, models.RawComment{
			Platform: models.PlatformTwitter,
			Twitter: &models.TwitterRawComment{
				ID:            reply.ID,
				TweetID:       tweetID,
				Username:      reply.Author.Username,
				FullText:      reply.FullText,
				FavoriteCount: reply.FavoriteCount,
				CreatedAt:     reply.CreatedAt,
			},
		})
	}

	return comments, nil
}
