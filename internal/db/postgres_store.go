package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"commentpulse/internal/models"
)

const createCommentsTable = `
	CREATE TABLE IF NOT EXISTS comments (
		comment_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		post_id TEXT,
		author TEXT,
		text TEXT NOT NULL,
		published_at TIMESTAMPTZ,
		like_count INT NOT NULL DEFAULT 0,

		sentiment_score REAL,
		subjectivity REAL,
		sentiment_label TEXT,

		vader_compound REAL,
		vader_positive REAL,
		vader_neutral REAL,
		vader_negative REAL,
		vader_label TEXT,

		transformer_sentiment TEXT,
		t_positive REAL,
		t_negative REAL,
		t_neutral REAL,

		anger REAL,
		anticipation REAL,
		disgust REAL,
		fear REAL,
		joy REAL,
		sadness REAL,
		surprise REAL,
		trust REAL,
		dominant_emotion TEXT,

		PRIMARY KEY (platform, comment_id)
	)`

const insertComment = `
	INSERT INTO comments (
		comment_id, platform, post_id, author, text, published_at, like_count,
		sentiment_score, subjectivity, sentiment_label,
		vader_compound, vader_positive, vader_neutral, vader_negative, vader_label,
		transformer_sentiment, t_positive, t_negative, t_neutral,
		anger, anticipation, disgust, fear, joy, sadness, surprise, trust,
		dominant_emotion
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7,
		$8, $9, $10,
		$11, $12, $13, $14, $15,
		$16, $17, $18, $19,
		$20, $21, $22, $23, $24, $25, $26, $27,
		$28
	)
	ON CONFLICT (platform, comment_id) DO NOTHING`

// PostgresStore is the primary comment store. Every row commits on its own;
// a failure mid-batch never rolls back earlier rows.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createCommentsTable); err != nil {
		return fmt.Errorf("[PostgresStore] Failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, comments []models.AnnotatedComment) (int, error) {
	inserted := 0
	for _, comment := range comments {
		tag, err := s.pool.Exec(ctx, insertComment,
			comment.CommentID,
			string(comment.Platform),
			comment.PostID,
			comment.Author,
			comment.Text,
			comment.PublishedAt,
			comment.LikeCount,
			comment.SentimentScore,
			comment.Subjectivity,
			comment.SentimentLabel,
			comment.VaderCompound,
			comment.VaderPositive,
			comment.VaderNeutral,
			comment.VaderNegative,
			comment.VaderLabel,
			comment.TransformerSentiment,
			comment.TPositive,
			comment.TNegative,
			comment.TNeutral,
			emotionScore(comment, "anger"),
			emotionScore(comment, "anticipation"),
			emotionScore(comment, "disgust"),
			emotionScore(comment, "fear"),
			emotionScore(comment, "joy"),
			emotionScore(comment, "sadness"),
			emotionScore(comment, "surprise"),
			emotionScore(comment, "trust"),
			comment.DominantEmotion,
		)
		if err != nil {
			slog.Warn("[PostgresStore] Row insert failed",
				slog.String("comment_id", comment.CommentID),
				slog.String("platform", string(comment.Platform)),
				slog.String("error", err.Error()))
			continue
		}
		inserted += int(tag.RowsAffected())
	}

	slog.Info("[PostgresStore] Upsert complete",
		slog.Int("batch", len(comments)), slog.Int("inserted", inserted))
	return inserted, nil
}

func (s *PostgresStore) BackfillAnnotation(ctx context.Context, platform models.Platform, commentID string, fields BackfillFields) error {
	if len(fields) == 0 {
		return nil
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+2)
	for column, value := range fields {
		if !IsAnnotationColumn(column) {
			return fmt.Errorf("[PostgresStore] %q is not a backfillable annotation column", column)
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, string(platform), commentID)

	query := fmt.Sprintf("UPDATE comments SET %s WHERE platform = $%d AND comment_id = $%d",
		strings.Join(assignments, ", "), len(args)-1, len(args))

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("[PostgresStore] Backfill failed for %s/%s: %w", platform, commentID, err)
	}
	return nil
}

// CommentsMissingAnnotation selects rows where the given annotation column
// is still NULL, for second-pass model runs.
func (s *PostgresStore) CommentsMissingAnnotation(ctx context.Context, column string, limit int) ([]PendingComment, error) {
	if !IsAnnotationColumn(column) {
		return nil, fmt.Errorf("[PostgresStore] %q is not an annotation column", column)
	}

	query := fmt.Sprintf(
		"SELECT platform, comment_id, text FROM comments WHERE %s IS NULL LIMIT $1", column)

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("[PostgresStore] Missing-annotation query failed: %w", err)
	}
	defer rows.Close()

	var pending []PendingComment
	for rows.Next() {
		var platform string
		var p PendingComment
		if err := rows.Scan(&platform, &p.CommentID, &p.Text); err != nil {
			return nil, fmt.Errorf("[PostgresStore] Scan failed: %w", err)
		}
		p.Platform = models.Platform(platform)
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
