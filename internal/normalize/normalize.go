package normalize

import (
	"log/slog"
	"time"

	"commentpulse/internal/models"
)

// Result carries the canonical records plus the count of records dropped
// for missing required fields. Skips are counted, never fatal.
type Result struct {
	Comments []models.CanonicalComment
	Skipped  int
}

// Normalize reconciles adapter output into the canonical shape. Each
// platform variant has one explicit field mapping; optional fields coerce to
// documented defaults (empty text, zero likes, nil timestamp), and a record
// is dropped only when its variant payload or comment ID is missing.
// Deterministic: no randomness, no external calls.
func Normalize(raw []models.RawComment) Result {
	comments := make([]models.CanonicalComment, 0, len(raw))
	skipped := 0

	for _, record := range raw {
		canonical, ok := mapVariant(record)
		if !ok {
			skipped++
			continue
		}
		comments = append(comments, canonical)
	}

	if skipped > 0 {
		slog.Warn("[Normalizer] Skipped records missing required fields",
			slog.Int("skipped", skipped))
	}

	return Result{Comments: comments, Skipped: skipped}
}

func mapVariant(record models.RawComment) (models.CanonicalComment, bool) {
	switch record.Platform {
	case models.PlatformYouTube:
		if record.YouTube == nil {
			return models.CanonicalComment{}, false
		}
		return mapYouTube(record.YouTube)
	case models.PlatformReddit:
		if record.Reddit == nil {
			return models.CanonicalComment{}, false
		}
		return mapReddit(record.Reddit)
	case models.PlatformTwitter:
		if record.Twitter == nil {
			return models.CanonicalComment{}, false
		}
		return mapTwitter(record.Twitter)
	case models.PlatformInstagram:
		if record.Instagram == nil {
			return models.CanonicalComment{}, false
		}
		return mapInstagram(record.Instagram)
	default:
		return models.CanonicalComment{}, false
	}
}

func mapYouTube(raw *models.YouTubeRawComment) (models.CanonicalComment, bool) {
	if raw.CommentID == "" {
		return models.CanonicalComment{}, false
	}
	return models.CanonicalComment{
		CommentID:   raw.CommentID,
		PostID:      raw.VideoID,
		Platform:    models.PlatformYouTube,
		Author:      raw.AuthorDisplayName,
		Text:        raw.TextDisplay,
		PublishedAt: parseRFC3339(raw.PublishedAt),
		LikeCount:   clampLikes(raw.LikeCount),
	}, true
}

func mapReddit(raw *models.RedditRawComment) (models.CanonicalComment, bool) {
	if raw.ID == "" {
		return models.CanonicalComment{}, false
	}
	return models.CanonicalComment{
		CommentID:   raw.ID,
		PostID:      raw.LinkID,
		Platform:    models.PlatformReddit,
		Author:      raw.Author,
		Text:        raw.Body,
		PublishedAt: parseUnixSeconds(int64(raw.CreatedUTC)),
		LikeCount:   clampLikes(raw.Ups),
	}, true
}

func mapTwitter(raw *models.TwitterRawComment) (models.CanonicalComment, bool) {
	if raw.ID == "" {
		return models.CanonicalComment{}, false
	}
	return models.CanonicalComment{
		CommentID:   raw.ID,
		PostID:      raw.TweetID,
		Platform:    models.PlatformTwitter,
		Author:      raw.Username,
		Text:        raw.FullText,
		PublishedAt: parseRFC3339(raw.CreatedAt),
		LikeCount:   clampLikes(raw.FavoriteCount),
	}, true
}

func mapInstagram(raw *models.InstagramRawComment) (models.CanonicalComment, bool) {
	if raw.ID == "" {
		return models.CanonicalComment{}, false
	}
	return models.CanonicalComment{
		CommentID:   raw.ID,
		PostID:      raw.Shortcode,
		Platform:    models.PlatformInstagram,
		Author:      raw.OwnerUsername,
		Text:        raw.Text,
		PublishedAt: parseUnixSeconds(raw.CreatedAt),
		LikeCount:   clampLikes(raw.EdgeLikedByCount),
	}, true
}

// parseRFC3339 tolerates response-shape drift: an unparseable or missing
// timestamp becomes nil rather than an error.
func parseRFC3339(value string) *time.Time {
	if value == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	ts = ts.UTC()
	return &ts
}

func parseUnixSeconds(value int64) *time.Time {
	if value <= 0 {
		return nil
	}
	ts := time.Unix(value, 0).UTC()
	return &ts
}

func clampLikes(likes int) int {
	if likes < 0 {
		return 0
	}
	return likes
}
