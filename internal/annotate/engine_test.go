package annotate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"commentpulse/internal/emotion"
	"commentpulse/internal/models"
	"commentpulse/internal/sentiment"
)

type stubModel struct {
	name   string
	result sentiment.Result
}

func (m *stubModel) Name() string                       { return m.name }
func (m *stubModel) Score(text string) sentiment.Result { return m.result }

// flakyScorer succeeds for a fixed number of calls, then fails.
type flakyScorer struct {
	calls    int
	failFrom int
}

func (s *flakyScorer) Score(text string) (map[string]float64, error) {
	s.calls++
	if s.calls >= s.failFrom {
		return nil, errors.New("model file missing")
	}
	scores := emotion.Zeroed()
	scores["joy"] = 1
	return scores, nil
}

func canonical(ids ...string) []models.CanonicalComment {
	comments := make([]models.CanonicalComment, 0, len(ids))
	for _, id := range ids {
		comments = append(comments, models.CanonicalComment{
			CommentID: id,
			Platform:  models.PlatformYouTube,
			Text:      "happy to see this",
		})
	}
	return comments
}

func TestAnnotateNilModelWritesNeutralDefaults(t *testing.T) {
	engine := NewEngine(emotion.NewLexiconScorer(), nil)

	annotated := engine.Annotate(context.Background(), canonical("c1"), nil, false)
	if len(annotated) != 1 {
		t.Fatalf("got %d records, want 1", len(annotated))
	}
	record := annotated[0]
	if record.SentimentScore != 0.0 || record.SentimentLabel != sentiment.LabelNeutral {
		t.Errorf("defaults = %v/%q, want 0.0/neutral", record.SentimentScore, record.SentimentLabel)
	}
	if record.VaderCompound != nil || record.TransformerSentiment != nil {
		t.Error("namespaced fields must stay nil without a model")
	}
}

func TestAnnotateEmotionDisabledUsesPlaceholder(t *testing.T) {
	engine := NewEngine(emotion.NewLexiconScorer(), nil)

	annotated := engine.Annotate(context.Background(), canonical("c1", "c2"), nil, false)
	for _, record := range annotated {
		if record.DominantEmotion != models.DominantEmotionNone {
			t.Errorf("DominantEmotion = %q, want %q", record.DominantEmotion, models.DominantEmotionNone)
		}
		if len(record.EmotionScores) != len(models.EmotionVocabulary) {
			t.Fatalf("placeholder scores missing keys: %v", record.EmotionScores)
		}
		for emo, score := range record.EmotionScores {
			if score != 0.0 {
				t.Errorf("placeholder score %q = %v, want 0.0", emo, score)
			}
		}
	}
}

func TestAnnotateScorerFailureZeroesWholeBatch(t *testing.T) {
	// Two comments score fine, the third fails; earlier records must be
	// rewritten onto the placeholder path too.
	engine := NewEngine(&flakyScorer{failFrom: 3}, nil)

	annotated := engine.Annotate(context.Background(), canonical("c1", "c2", "c3", "c4"), nil, true)
	if len(annotated) != 4 {
		t.Fatalf("got %d records, want 4", len(annotated))
	}
	for i, record := range annotated {
		if record.DominantEmotion != models.DominantEmotionNone {
			t.Errorf("record %d DominantEmotion = %q, want %q", i, record.DominantEmotion, models.DominantEmotionNone)
		}
		for emo, score := range record.EmotionScores {
			if score != 0.0 {
				t.Errorf("record %d score %q = %v, want 0.0", i, emo, score)
			}
		}
	}
}

func TestAnnotateEmotionSuccess(t *testing.T) {
	engine := NewEngine(emotion.NewLexiconScorer(), nil)

	annotated := engine.Annotate(context.Background(), canonical("c1"), nil, true)
	record := annotated[0]
	if record.DominantEmotion == models.DominantEmotionNone {
		t.Fatal("expected a real dominant emotion for emotional text")
	}
	if record.EmotionScores["joy"] == 0 {
		t.Errorf("joy = %v, want > 0 for %q", record.EmotionScores["joy"], "happy to see this")
	}
}

func TestAnnotateFillsVaderNamespace(t *testing.T) {
	engine := NewEngine(emotion.NewLexiconScorer(), nil)
	model := &stubModel{
		name: sentiment.ModelVader,
		result: sentiment.Result{
			Polarity: 0.6,
			Label:    sentiment.LabelPositive,
			Positive: ptrF(0.5), Neutral: ptrF(0.4), Negative: ptrF(0.1),
		},
	}

	record := engine.Annotate(context.Background(), canonical("c1"), model, false)[0]
	if record.SentimentScore != 0.6 || record.SentimentLabel != sentiment.LabelPositive {
		t.Errorf("generic trio = %v/%q", record.SentimentScore, record.SentimentLabel)
	}
	if record.VaderCompound == nil || *record.VaderCompound != 0.6 {
		t.Errorf("VaderCompound = %v, want 0.6", record.VaderCompound)
	}
	if record.VaderLabel == nil || *record.VaderLabel != sentiment.LabelPositive {
		t.Errorf("VaderLabel = %v", record.VaderLabel)
	}
	if record.TransformerSentiment != nil {
		t.Error("transformer namespace must stay nil for a vader run")
	}
}

func TestAnnotateFillsTransformerNamespace(t *testing.T) {
	engine := NewEngine(emotion.NewLexiconScorer(), nil)
	model := &stubModel{
		name: sentiment.ModelTransformer,
		result: sentiment.Result{
			Polarity: -0.3,
			Label:    sentiment.LabelNegative,
			Positive: ptrF(0.2), Negative: ptrF(0.5), Neutral: ptrF(0.3),
		},
	}

	record := engine.Annotate(context.Background(), canonical("c1"), model, false)[0]
	if record.TransformerSentiment == nil || *record.TransformerSentiment != sentiment.LabelNegative {
		t.Errorf("TransformerSentiment = %v", record.TransformerSentiment)
	}
	if record.VaderCompound != nil {
		t.Error("vader namespace must stay nil for a transformer run")
	}
}

type recordingSummarizer struct {
	called bool
}

func (s *recordingSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.called = true
	return "short summary", nil
}

func TestScoringTextSummarizesLongBodies(t *testing.T) {
	summarizer := &recordingSummarizer{}
	engine := NewEngine(emotion.NewLexiconScorer(), summarizer)

	long := strings.Repeat("word ", maxModelInputRunes)
	got := engine.scoringText(context.Background(), long)
	if !summarizer.called {
		t.Fatal("summarizer was not called for an over-long body")
	}
	if got != "short summary" {
		t.Errorf("scoringText = %q, want summary", got)
	}

	summarizer.called = false
	short := "just a short comment"
	if got := engine.scoringText(context.Background(), short); got != short {
		t.Errorf("scoringText = %q, want input unchanged", got)
	}
	if summarizer.called {
		t.Error("summarizer must not run for short bodies")
	}
}

func TestScoringTextTruncatesWithoutSummarizer(t *testing.T) {
	engine := NewEngine(emotion.NewLexiconScorer(), nil)

	long := strings.Repeat("a ", maxModelInputRunes)
	got := engine.scoringText(context.Background(), long)
	if len([]rune(got)) != maxModelInputRunes {
		t.Errorf("truncated length = %d, want %d", len([]rune(got)), maxModelInputRunes)
	}
}

func ptrF(v float64) *float64 { return &v }
