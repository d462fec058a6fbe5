package db

import (
	"context"

	"commentpulse/internal/models"
)

// BackfillFields maps annotation column names to replacement values. Only
// whitelisted annotation columns may be written; base comment columns are
// immutable after insert.
type BackfillFields map[string]any

// PendingComment is a persisted row that still lacks a given model's
// annotation, selected for second-pass backfill.
type PendingComment struct {
	Platform  models.Platform
	CommentID string
	Text      string
}

// Store is the durable comment store. Rows are keyed by
// (platform, comment_id); comment IDs are only unique within a platform.
type Store interface {
	// EnsureSchema creates the durable structure if absent. Idempotent,
	// safe to call on every run.
	EnsureSchema(ctx context.Context) error

	// Upsert inserts each comment, treating an existing key as a no-op
	// (the stored row is preserved). Returns the number of new rows. A
	// single row failure is logged and skipped, never aborting the batch.
	Upsert(ctx context.Context, comments []models.AnnotatedComment) (int, error)

	// BackfillAnnotation overwrites only the given annotation columns on
	// an already-persisted row. This is the sole path that updates
	// existing annotation values.
	BackfillAnnotation(ctx context.Context, platform models.Platform, commentID string, fields BackfillFields) error

	Close()
}

// annotationColumns is the backfill whitelist: one namespace per sentiment
// model plus the fixed emotion vocabulary.
var annotationColumns = map[string]bool{
	"sentiment_score": true,
	"subjectivity":    true,
	"sentiment_label": true,

	"vader_compound": true,
	"vader_positive": true,
	"vader_neutral":  true,
	"vader_negative": true,
	"vader_label":    true,

	"transformer_sentiment": true,
	"t_positive":            true,
	"t_negative":            true,
	"t_neutral":             true,

	"anger": true, "anticipation": true, "disgust": true, "fear": true,
	"joy": true, "sadness": true, "surprise": true, "trust": true,
	"dominant_emotion": true,
}

// IsAnnotationColumn reports whether a column may be backfilled.
func IsAnnotationColumn(name string) bool {
	return annotationColumns[name]
}

func emotionScore(comment models.AnnotatedComment, name string) float64 {
	if comment.EmotionScores == nil {
		return 0.0
	}
	return comment.EmotionScores[name]
}
