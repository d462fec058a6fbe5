package adapters

import (
	"context"
	"regexp"

	"commentpulse/internal/clients"
	"commentpulse/internal/models"
)

var (
	videoIDPattern  = regexp.MustCompile(`v=([a-zA-Z0-9_-]+)`)
	shortURLPattern = regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`)
)

// ExtractVideoID pulls the video ID out of a watch or youtu.be URL.
func ExtractVideoID(url string) string {
	if match := videoIDPattern.FindStringSubmatch(url); match != nil {
		return match[1]
	}
	if match := shortURLPattern.FindStringSubmatch(url); match != nil {
		return match[1]
	}
	return ""
}

type YouTubeAdapter struct {
	client *clients.YouTubeClient
}

func NewYouTubeAdapter(client *clients.YouTubeClient) *YouTubeAdapter {
	return &YouTubeAdapter{client: client}
}

func (a *YouTubeAdapter) Platform() models.Platform { return models.PlatformYouTube }

// Fetch pages through commentThreads until maxResults or the API stops
// returning a nextPageToken; the final page is truncated to the bound.
func (a *YouTubeAdapter) Fetch(ctx context.Context, sourceRef string, maxResults int) ([]models.RawComment, error) {
	comments := []models.RawComment{}

	videoID := ExtractVideoID(sourceRef)
	if videoID == "" {
		return comments, &FetchError{Platform: a.Platform(), Reason: "invalid video URL"}
	}

	pageToken := ""
	for len(comments) < maxResults {
		page, err := a.client.FetchCommentThreads(ctx, videoID, pageToken)
		if err != nil {
			return comments, &FetchError{Platform: a.Platform(), Reason: "comment threads request failed", Err: err}
		}

		for _, item := range page.Items {
			if len(comments) >= maxResults {
				break
			}
			snippet := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, models.RawComment{
				Platform: models.PlatformYouTube,
				YouTube: &models.YouTubeRawComment{
					CommentID:         item.ID,
					VideoID:           videoID,
					AuthorDisplayName: snippet.AuthorDisplayName,
					TextDisplay:       snippet.TextDisplay,
					LikeCount:         snippet.LikeCount,
					PublishedAt:       snippet.PublishedAt,
				},
			})
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return comments, nil
}
