package pipeline

import (
	"context"
	"errors"
	"testing"

	"commentpulse/internal/adapters"
	"commentpulse/internal/annotate"
	"commentpulse/internal/db"
	"commentpulse/internal/emotion"
	"commentpulse/internal/models"
	"commentpulse/internal/sentiment"
)

type fakeAdapter struct {
	platform models.Platform
	raw      []models.RawComment
	err      error
}

func (a *fakeAdapter) Platform() models.Platform { return a.platform }

func (a *fakeAdapter) Fetch(ctx context.Context, sourceRef string, maxResults int) ([]models.RawComment, error) {
	if len(a.raw) > maxResults {
		return a.raw[:maxResults], a.err
	}
	return a.raw, a.err
}

// fakeStore keeps rows in memory with the same conflict-is-a-no-op contract
// as the real stores.
type fakeStore struct {
	rows      map[string]models.AnnotatedComment
	schemaErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]models.AnnotatedComment{}}
}

func (s *fakeStore) EnsureSchema(ctx context.Context) error { return s.schemaErr }

func (s *fakeStore) Upsert(ctx context.Context, comments []models.AnnotatedComment) (int, error) {
	inserted := 0
	for _, comment := range comments {
		key := string(comment.Platform) + "/" + comment.CommentID
		if _, exists := s.rows[key]; exists {
			continue
		}
		s.rows[key] = comment
		inserted++
	}
	return inserted, nil
}

func (s *fakeStore) BackfillAnnotation(ctx context.Context, platform models.Platform, commentID string, fields db.BackfillFields) error {
	return nil
}

func (s *fakeStore) Close() {}

func rawYouTube(ids ...string) []models.RawComment {
	raw := make([]models.RawComment, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, models.RawComment{
			Platform: models.PlatformYouTube,
			YouTube: &models.YouTubeRawComment{
				CommentID:   id,
				TextDisplay: "what a great video",
			},
		})
	}
	return raw
}

func newTestPipeline(adapter adapters.Adapter, store db.Store) *Pipeline {
	engine := annotate.NewEngine(emotion.NewLexiconScorer(), nil)
	sentimentModels := map[string]sentiment.Model{
		sentiment.ModelLexicon: sentiment.NewLexiconModel(),
	}
	return NewPipeline([]adapters.Adapter{adapter}, engine, store, nil, sentimentModels)
}

func TestRunEndToEnd(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{platform: models.PlatformYouTube, raw: rawYouTube("a", "b", "c")}
	p := newTestPipeline(adapter, store)

	annotated, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if summary.State != StateDone {
		t.Errorf("State = %q, want %q", summary.State, StateDone)
	}
	if summary.Fetched != 3 || summary.Normalized != 3 || summary.Annotated != 3 || summary.Persisted != 3 {
		t.Errorf("counts wrong: %+v", summary)
	}
	if len(annotated) != 3 {
		t.Fatalf("got %d annotated, want 3", len(annotated))
	}
	for _, record := range annotated {
		if record.SentimentLabel != sentiment.LabelPositive {
			t.Errorf("label = %q for %q, want positive", record.SentimentLabel, record.Text)
		}
	}
	if len(store.rows) != 3 {
		t.Errorf("store holds %d rows, want 3", len(store.rows))
	}
}

func TestRunFailsOnFetchErrorWithNoResults(t *testing.T) {
	fetchErr := &adapters.FetchError{Platform: models.PlatformYouTube, Reason: "quota exceeded"}
	adapter := &fakeAdapter{platform: models.PlatformYouTube, err: fetchErr}
	p := newTestPipeline(adapter, newFakeStore())

	annotated, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true)
	if err == nil {
		t.Fatal("Run must fail when fetch yields nothing")
	}
	var typed *adapters.FetchError
	if !errors.As(err, &typed) {
		t.Errorf("error %v is not a FetchError", err)
	}
	if summary.State != StateFailed {
		t.Errorf("State = %q, want %q", summary.State, StateFailed)
	}
	if annotated != nil {
		t.Errorf("annotated = %v, want nil", annotated)
	}
}

func TestRunKeepsPartialFetch(t *testing.T) {
	fetchErr := &adapters.FetchError{Platform: models.PlatformYouTube, Reason: "page 2 failed"}
	adapter := &fakeAdapter{platform: models.PlatformYouTube, raw: rawYouTube("a", "b"), err: fetchErr}
	p := newTestPipeline(adapter, newFakeStore())

	annotated, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true)
	if err != nil {
		t.Fatalf("partial fetch must not fail the run, got %v", err)
	}
	if summary.State != StateDone || len(annotated) != 2 {
		t.Errorf("state %q with %d records, want done with 2", summary.State, len(annotated))
	}
	if len(summary.Warnings) == 0 {
		t.Error("degraded fetch must leave a warning")
	}
}

func TestRunUnknownPlatformFails(t *testing.T) {
	p := newTestPipeline(&fakeAdapter{platform: models.PlatformYouTube}, newFakeStore())

	_, summary, err := p.Run(context.Background(), models.PlatformReddit, "https://reddit.com/x", 10, sentiment.ModelLexicon, true)
	if err == nil {
		t.Fatal("Run must fail for a platform without an adapter")
	}
	if summary.State != StateFailed {
		t.Errorf("State = %q, want %q", summary.State, StateFailed)
	}
}

func TestRunMissingModelDegrades(t *testing.T) {
	adapter := &fakeAdapter{platform: models.PlatformYouTube, raw: rawYouTube("a")}
	p := newTestPipeline(adapter, newFakeStore())

	annotated, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelTransformer, true)
	if err != nil {
		t.Fatalf("missing model must degrade, not fail: %v", err)
	}
	if len(summary.Warnings) == 0 {
		t.Error("missing model must leave a warning")
	}
	if annotated[0].SentimentScore != 0.0 || annotated[0].SentimentLabel != sentiment.LabelNeutral {
		t.Errorf("got %v/%q, want neutral defaults",
			annotated[0].SentimentScore, annotated[0].SentimentLabel)
	}
}

func TestRunRerunInsertsNothingNew(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{platform: models.PlatformYouTube, raw: rawYouTube("a", "b")}
	p := newTestPipeline(adapter, store)

	if _, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true); err != nil || summary.Persisted != 2 {
		t.Fatalf("first run: persisted %d err %v", summary.Persisted, err)
	}
	_, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if summary.Persisted != 0 {
		t.Errorf("second run persisted %d rows, want 0", summary.Persisted)
	}
	if len(store.rows) != 2 {
		t.Errorf("store holds %d rows, want 2", len(store.rows))
	}
}

func TestRunSchemaFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	store.schemaErr = errors.New("connection refused")
	adapter := &fakeAdapter{platform: models.PlatformYouTube, raw: rawYouTube("a")}
	p := newTestPipeline(adapter, store)

	_, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true)
	if err != nil {
		t.Fatalf("persistence failure must not fail the run: %v", err)
	}
	if summary.State != StateDone || summary.Persisted != 0 {
		t.Errorf("state %q persisted %d, want done/0", summary.State, summary.Persisted)
	}
	if len(summary.Warnings) == 0 {
		t.Error("skipped persistence must leave a warning")
	}
}

type fakeSeen struct {
	seen map[string]bool
}

func (c *fakeSeen) IsSeen(ctx context.Context, platform, commentID string) bool {
	return c.seen[platform+"/"+commentID]
}

func (c *fakeSeen) MarkSeen(ctx context.Context, platform, commentID string) error {
	c.seen[platform+"/"+commentID] = true
	return nil
}

func TestRunSkipsSeenComments(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{platform: models.PlatformYouTube, raw: rawYouTube("a", "b", "c")}
	engine := annotate.NewEngine(emotion.NewLexiconScorer(), nil)
	seen := &fakeSeen{seen: map[string]bool{"youtube/b": true}}
	p := NewPipeline([]adapters.Adapter{adapter}, engine, store, seen,
		map[string]sentiment.Model{sentiment.ModelLexicon: sentiment.NewLexiconModel()})

	annotated, summary, err := p.Run(context.Background(), models.PlatformYouTube, "https://youtu.be/x", 10, sentiment.ModelLexicon, true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.SkippedSeen != 1 {
		t.Errorf("SkippedSeen = %d, want 1", summary.SkippedSeen)
	}
	if len(annotated) != 2 {
		t.Errorf("got %d annotated, want 2", len(annotated))
	}
	// The survivors are marked after persistence.
	if !seen.seen["youtube/a"] || !seen.seen["youtube/c"] {
		t.Errorf("persisted comments not marked seen: %v", seen.seen)
	}
}
