package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"commentpulse/config"
	"commentpulse/internal/adapters"
	"commentpulse/internal/annotate"
	"commentpulse/internal/clients"
	"commentpulse/internal/db"
	"commentpulse/internal/emotion"
	"commentpulse/internal/logging"
	"commentpulse/internal/models"
	"commentpulse/internal/pipeline"
	"commentpulse/internal/sentiment"
)

func main() {
	var (
		platform    = flag.String("platform", "youtube", "source platform: youtube, reddit, twitter or instagram")
		sourceRef   = flag.String("url", "", "post/video URL to fetch comments for")
		maxResults  = flag.Int("max", 200, "maximum comments to fetch")
		modelChoice = flag.String("model", sentiment.ModelLexicon, "sentiment model: lexicon, vader or transformer")
		emotions    = flag.Bool("emotions", true, "enable emotion analysis")
		noStore     = flag.Bool("no-store", false, "skip persistence, print results only")
	)
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if *sourceRef == "" {
		slog.Error("[Main] Missing -url")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	ctx := context.Background()

	model, err := sentiment.NewModel(*modelChoice)
	if err != nil {
		if !errors.Is(err, sentiment.ErrModelUnavailable) {
			slog.Error("[Main] Failed to build sentiment model", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Warn("[Main] Sentiment model unavailable, run will degrade",
			slog.String("model", *modelChoice), slog.String("error", err.Error()))
	}
	sentimentModels := map[string]sentiment.Model{}
	if model != nil {
		sentimentModels[*modelChoice] = model
		if closer, ok := model.(*sentiment.TransformerModel); ok {
			defer closer.Close()
		}
	}

	var summarizer annotate.Summarizer
	if cfg.OpenAIAPIKey != "" {
		summarizer = clients.NewOpenAIClient(cfg.OpenAIAPIKey)
	}
	engine := annotate.NewEngine(emotion.NewLexiconScorer(), summarizer)

	var store db.Store
	if !*noStore {
		store = buildStore(ctx, cfg)
	}
	if store != nil {
		defer store.Close()
	}

	var seen pipeline.SeenCache
	if cfg.ValkeyAddress != "" {
		valkey, err := clients.NewValkeyClient(cfg.ValkeyAddress, os.Getenv("VALKEY_PASSWORD"), cfg.ValkeyTLS)
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, running without seen-cache",
				slog.String("error", err.Error()))
		} else {
			defer valkey.Close()
			seen = valkey
		}
	}

	platformAdapters := []adapters.Adapter{
		adapters.NewYouTubeAdapter(clients.NewYouTubeClient(cfg.YouTubeAPIKey)),
		adapters.NewRedditAdapter(clients.NewRedditClient(cfg.RedditClientID, cfg.RedditClientSecret)),
		adapters.NewTwitterAdapter(clients.NewTwitterClient(cfg.TwitterBearerToken)),
		adapters.NewInstagramAdapter(clients.NewInstagramClient()),
	}

	run := pipeline.NewPipeline(platformAdapters, engine, store, seen, sentimentModels)

	annotated, summary, err := run.Run(ctx, models.Platform(*platform), *sourceRef, *maxResults, *modelChoice, *emotions)
	if err != nil {
		slog.Error("[Main] Run failed",
			slog.String("state", string(summary.State)),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(summary, annotated)
}

func buildStore(ctx context.Context, cfg config.Config) db.Store {
	switch cfg.StoreBackend {
	case "dynamodb":
		client, err := clients.NewDynamoDBClient(ctx, cfg.AWSEndpoint)
		if err != nil {
			slog.Warn("[Main] DynamoDB unavailable, running without persistence",
				slog.String("error", err.Error()))
			return nil
		}
		return db.NewDynamoStore(client, cfg.DynamoTable)
	default:
		if cfg.DatabaseURI == "" {
			slog.Warn("[Main] DB_URI not set, running without persistence")
			return nil
		}
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURI)
		if err != nil {
			slog.Warn("[Main] PostgreSQL unavailable, running without persistence",
				slog.String("error", err.Error()))
			return nil
		}
		return db.NewPostgresStore(pool)
	}
}

func printSummary(summary pipeline.Summary, annotated []models.AnnotatedComment) {
	fmt.Printf("platform=%s fetched=%d normalized=%d skipped=%d annotated=%d persisted=%d\n",
		summary.Platform, summary.Fetched, summary.Normalized,
		summary.Skipped, summary.Annotated, summary.Persisted)
	for _, warning := range summary.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}

	labels := map[string]int{}
	for _, comment := range annotated {
		labels[comment.SentimentLabel]++
	}
	fmt.Printf("labels: positive=%d neutral=%d negative=%d\n",
		labels[sentiment.LabelPositive], labels[sentiment.LabelNeutral], labels[sentiment.LabelNegative])
}
