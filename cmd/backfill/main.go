// Command backfill re-annotates already-persisted comments with a model
// that was not part of their original run, writing only that model's
// annotation columns.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"commentpulse/config"
	"commentpulse/internal/db"
	"commentpulse/internal/emotion"
	"commentpulse/internal/logging"
	"commentpulse/internal/models"
	"commentpulse/internal/sentiment"
)

func main() {
	var (
		modelChoice = flag.String("model", sentiment.ModelVader, "sentiment model to backfill: lexicon, vader or transformer")
		emotions    = flag.Bool("emotions", false, "backfill emotion columns instead of a sentiment model")
		batchSize   = flag.Int("batch", 500, "rows per pass")
	)
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.Load()
	ctx := context.Background()

	if cfg.DatabaseURI == "" {
		slog.Error("[Backfill] DB_URI is required")
		os.Exit(2)
	}
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURI)
	if err != nil {
		slog.Error("[Backfill] Could not connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	store := db.NewPostgresStore(pool)
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error("[Backfill] Schema check failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *emotions {
		backfillEmotions(ctx, store, *batchSize)
		return
	}
	backfillModel(ctx, store, *modelChoice, *batchSize)
}

// markerColumn is the column whose NULL value marks a row as not yet
// annotated by the given model.
func markerColumn(modelChoice string) string {
	switch modelChoice {
	case sentiment.ModelVader:
		return "vader_label"
	case sentiment.ModelTransformer:
		return "transformer_sentiment"
	default:
		return "sentiment_label"
	}
}

func backfillModel(ctx context.Context, store *db.PostgresStore, modelChoice string, batchSize int) {
	model, err := sentiment.NewModel(modelChoice)
	if err != nil {
		slog.Error("[Backfill] Model unavailable", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if closer, ok := model.(*sentiment.TransformerModel); ok {
		defer closer.Close()
	}

	marker := markerColumn(modelChoice)
	total := 0
	for {
		pending, err := store.CommentsMissingAnnotation(ctx, marker, batchSize)
		if err != nil {
			slog.Error("[Backfill] Query failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if len(pending) == 0 {
			break
		}

		for _, row := range pending {
			result := model.Score(sentiment.CleanText(row.Text))
			if err := store.BackfillAnnotation(ctx, row.Platform, row.CommentID, modelFields(modelChoice, result)); err != nil {
				slog.Warn("[Backfill] Row update failed",
					slog.String("comment_id", row.CommentID),
					slog.String("error", err.Error()))
				continue
			}
			total++
		}
		slog.Info("[Backfill] Batch complete", slog.Int("rows", len(pending)))

		if len(pending) < batchSize {
			break
		}
	}

	slog.Info("[Backfill] Done", slog.String("model", modelChoice), slog.Int("updated", total))
}

// modelFields maps a model result onto its own column namespace. The
// generic trio is written only for the lexicon model, which owns it.
func modelFields(modelChoice string, result sentiment.Result) db.BackfillFields {
	switch modelChoice {
	case sentiment.ModelVader:
		fields := db.BackfillFields{
			"vader_compound": result.Polarity,
			"vader_label":    result.Label,
		}
		if result.Positive != nil {
			fields["vader_positive"] = *result.Positive
			fields["vader_neutral"] = *result.Neutral
			fields["vader_negative"] = *result.Negative
		}
		return fields
	case sentiment.ModelTransformer:
		fields := db.BackfillFields{"transformer_sentiment": result.Label}
		if result.Positive != nil {
			fields["t_positive"] = *result.Positive
		}
		if result.Negative != nil {
			fields["t_negative"] = *result.Negative
		}
		if result.Neutral != nil {
			fields["t_neutral"] = *result.Neutral
		}
		return fields
	default:
		fields := db.BackfillFields{
			"sentiment_score": result.Polarity,
			"sentiment_label": result.Label,
		}
		if result.Subjectivity != nil {
			fields["subjectivity"] = *result.Subjectivity
		}
		return fields
	}
}

func backfillEmotions(ctx context.Context, store *db.PostgresStore, batchSize int) {
	scorer := emotion.NewLexiconScorer()
	total := 0

	for {
		pending, err := store.CommentsMissingAnnotation(ctx, "dominant_emotion", batchSize)
		if err != nil {
			slog.Error("[Backfill] Query failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if len(pending) == 0 {
			break
		}

		for _, row := range pending {
			scores, err := scorer.Score(sentiment.CleanText(row.Text))
			dominant := models.DominantEmotionNone
			if err != nil {
				scores = emotion.Zeroed()
			} else {
				dominant = emotion.Dominant(scores)
			}

			fields := db.BackfillFields{"dominant_emotion": dominant}
			for name, score := range scores {
				fields[name] = score
			}

			if err := store.BackfillAnnotation(ctx, row.Platform, row.CommentID, fields); err != nil {
				slog.Warn("[Backfill] Row update failed",
					slog.String("comment_id", row.CommentID),
					slog.String("error", err.Error()))
				continue
			}
			total++
		}
		slog.Info("[Backfill] Batch complete", slog.Int("rows", len(pending)))

		if len(pending) < batchSize {
			break
		}
	}

	slog.Info("[Backfill] Done", slog.String("model", "emotions"), slog.Int("updated", total))
}
