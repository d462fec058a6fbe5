package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"commentpulse/internal/adapters"
	"commentpulse/internal/annotate"
	"commentpulse/internal/db"
	"commentpulse/internal/models"
	"commentpulse/internal/normalize"
	"commentpulse/internal/sentiment"
)

type State string

const (
	StateIdle        State = "idle"
	StateFetching    State = "fetching"
	StateNormalizing State = "normalizing"
	StateAnnotating  State = "annotating"
	StatePersisting  State = "persisting"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

const defaultMaxResults = 200

// Summary is the run-result value object handed back to the presentation
// layer; all per-stage counts and degradation warnings are aggregated here
// instead of living in shared session state.
type Summary struct {
	Platform    models.Platform
	SourceRef   string
	State       State
	Fetched     int
	Normalized  int
	Skipped     int
	SkippedSeen int
	Annotated   int
	Persisted   int
	Warnings    []string
}

func (s *Summary) warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// SeenCache lets incremental re-runs skip comments already processed. Both
// methods are best-effort; the pipeline works identically without a cache.
type SeenCache interface {
	IsSeen(ctx context.Context, platform, commentID string) bool
	MarkSeen(ctx context.Context, platform, commentID string) error
}

// Pipeline sequences adapter → normalizer → annotation → persistence for
// one source reference per run. Single-threaded and synchronous: stages run
// in order, and only Fetching (zero results) can fail the whole run.
type Pipeline struct {
	adapters map[models.Platform]adapters.Adapter
	engine   *annotate.Engine
	store    db.Store
	seen     SeenCache
	models   map[string]sentiment.Model
}

// NewPipeline wires the stages. Models are constructed once per process and
// passed in by reference; store and seen may be nil, which disables the
// persisting stage and the seen-cache skip respectively.
func NewPipeline(platformAdapters []adapters.Adapter, engine *annotate.Engine, store db.Store, seen SeenCache, sentimentModels map[string]sentiment.Model) *Pipeline {
	byPlatform := make(map[models.Platform]adapters.Adapter, len(platformAdapters))
	for _, a := range platformAdapters {
		byPlatform[a.Platform()] = a
	}
	return &Pipeline{
		adapters: byPlatform,
		engine:   engine,
		store:    store,
		seen:     seen,
		models:   sentimentModels,
	}
}

// Run processes one source reference end to end and returns the annotated
// comments plus the run summary. The error is non-nil only when the run
// reaches the Failed state; degraded stages surface as summary warnings.
func (p *Pipeline) Run(ctx context.Context, platform models.Platform, sourceRef string, maxResults int, modelChoice string, emotionEnabled bool) ([]models.AnnotatedComment, Summary, error) {
	summary := Summary{Platform: platform, SourceRef: sourceRef, State: StateIdle}

	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	adapter, ok := p.adapters[platform]
	if !ok {
		summary.State = StateFailed
		return nil, summary, fmt.Errorf("[Pipeline] No adapter for platform %q", platform)
	}

	summary.State = StateFetching
	slog.Info("[Pipeline] Fetching comments",
		slog.String("platform", string(platform)), slog.String("source", sourceRef))

	raw, err := adapter.Fetch(ctx, sourceRef, maxResults)
	if err != nil {
		if len(raw) == 0 {
			summary.State = StateFailed
			return nil, summary, err
		}
		// Some pages made it through before the failure; keep them and
		// degrade instead of aborting.
		summary.warn("fetch degraded after %d comments: %v", len(raw), err)
	}
	summary.Fetched = len(raw)

	summary.State = StateNormalizing
	normalized := normalize.Normalize(raw)
	summary.Normalized = len(normalized.Comments)
	summary.Skipped = normalized.Skipped

	comments := p.filterSeen(ctx, normalized.Comments, &summary)

	summary.State = StateAnnotating
	model := p.models[modelChoice]
	if model == nil && modelChoice != "" {
		summary.warn("sentiment model %q unavailable, using neutral defaults", modelChoice)
	}
	annotated := p.engine.Annotate(ctx, comments, model, emotionEnabled)
	summary.Annotated = len(annotated)

	summary.State = StatePersisting
	p.persist(ctx, annotated, &summary)

	summary.State = StateDone
	slog.Info("[Pipeline] Run complete",
		slog.String("platform", string(platform)),
		slog.Int("fetched", summary.Fetched),
		slog.Int("normalized", summary.Normalized),
		slog.Int("skipped", summary.Skipped),
		slog.Int("persisted", summary.Persisted))

	return annotated, summary, nil
}

func (p *Pipeline) filterSeen(ctx context.Context, comments []models.CanonicalComment, summary *Summary) []models.CanonicalComment {
	if p.seen == nil {
		return comments
	}

	kept := comments[:0:0]
	for _, comment := range comments {
		if p.seen.IsSeen(ctx, string(comment.Platform), comment.CommentID) {
			summary.SkippedSeen++
			continue
		}
		kept = append(kept, comment)
	}
	return kept
}

// persist is non-fatal: schema or batch failures degrade the run with a
// warning rather than failing it.
func (p *Pipeline) persist(ctx context.Context, annotated []models.AnnotatedComment, summary *Summary) {
	if p.store == nil || len(annotated) == 0 {
		return
	}

	if err := p.store.EnsureSchema(ctx); err != nil {
		summary.warn("persistence skipped: %v", err)
		return
	}

	inserted, err := p.store.Upsert(ctx, annotated)
	if err != nil {
		summary.warn("persistence degraded: %v", err)
	}
	summary.Persisted = inserted

	if p.seen == nil {
		return
	}
	for _, comment := range annotated {
		if err := p.seen.MarkSeen(ctx, string(comment.Platform), comment.CommentID); err != nil {
			slog.Warn("[Pipeline] Failed to mark comment as seen",
				slog.String("comment_id", comment.CommentID),
				slog.String("error", err.Error()))
		}
	}
}
