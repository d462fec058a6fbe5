package adapters

import (
	"context"
	"regexp"

	"commentpulse/internal/clients"
	"commentpulse/internal/models"
)

var shortcodePattern = regexp.MustCompile(`/(?:p|reel)/([^/?#]+)`)

// ExtractShortcode pulls the media shortcode out of a post or reel URL.
func ExtractShortcode(url string) string {
	if match := shortcodePattern.FindStringSubmatch(url); match != nil {
		return match[1]
	}
	return ""
}

type InstagramAdapter struct {
	client *clients.InstagramClient
}

func NewInstagramAdapter(client *clients.InstagramClient) *InstagramAdapter {
	return &InstagramAdapter{client: client}
}

func (a *InstagramAdapter) Platform() models.Platform { return models.PlatformInstagram }

func (a *InstagramAdapter) Fetch(ctx context.Context, sourceRef string, maxResults int) ([]models.RawComment, error) {
	comments := []models.RawComment{}

	shortcode := ExtractShortcode(sourceRef)
	if shortcode == "" {
		return comments, &FetchError{Platform: a.Platform(), Reason: "invalid post URL"}
	}

	media, err := a.client.FetchMediaComments(ctx, shortcode)
	if err != nil {
		return comments, &FetchError{Platform: a.Platform(), Reason: "media request failed", Err: err}
	}

	for _, edge := range media.GraphQL.ShortcodeMedia.EdgeMediaToParentComment.Edges {
		if len(comments) >= maxResults {
			break
		}
		comments = append(comments, models.RawComment{
			Platform: models.PlatformInstagram,
			Instagram: &models.InstagramRawComment{
				ID:               edge.Node.ID,
				Shortcode:        shortcode,
				OwnerUsername:    edge.Node.Owner.Username,
				Text:             edge.Node.Text,
				CreatedAt:        edge.Node.CreatedAt,
				EdgeLikedByCount: edge.Node.EdgeLikedBy.Count,
			},
		})
	}

	return comments, nil
}
