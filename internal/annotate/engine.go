package annotate

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"commentpulse/internal/emotion"
	"commentpulse/internal/models"
	"commentpulse/internal/sentiment"
)

// Texts longer than this are condensed before scoring; lexicon scores get
// noisy and transformer inputs overflow well past this point.
const maxModelInputRunes = 2000

// Summarizer condenses over-long texts before scoring. Optional; nil means
// long texts are truncated instead.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Engine layers sentiment and emotion models over canonical comments.
// Annotation never fails a batch: a missing sentiment model degrades to
// score 0.0 / label "neutral", and an emotion scorer failure switches the
// whole batch to the zeroed placeholder path.
type Engine struct {
	emotions   emotion.Scorer
	summarizer Summarizer
}

func NewEngine(emotions emotion.Scorer, summarizer Summarizer) *Engine {
	return &Engine{emotions: emotions, summarizer: summarizer}
}

func (e *Engine) Annotate(ctx context.Context, comments []models.CanonicalComment, model sentiment.Model, emotionEnabled bool) []models.AnnotatedComment {
	annotated := make([]models.AnnotatedComment, 0, len(comments))

	if model == nil {
		slog.Warn("[AnnotationEngine] No sentiment model available, writing neutral defaults")
	}
	emotionActive := emotionEnabled && e.emotions != nil

	for _, comment := range comments {
		record := models.AnnotatedComment{CanonicalComment: comment}
		text := e.scoringText(ctx, comment.Text)

		if model != nil {
			applyModelResult(&record, model.Name(), model.Score(text))
		} else {
			record.SentimentScore = 0.0
			record.SentimentLabel = sentiment.LabelNeutral
		}

		if emotionActive {
			scores, err := e.emotions.Score(text)
			if err != nil {
				slog.Warn("[AnnotationEngine] Emotion scorer failed, zeroing batch",
					slog.String("error", err.Error()))
				emotionActive = false
				zeroEmotions(annotated)
			} else {
				record.EmotionScores = scores
				record.DominantEmotion = emotion.Dominant(scores)
			}
		}
		if !emotionActive {
			record.EmotionScores = emotion.Zeroed()
			record.DominantEmotion = models.DominantEmotionNone
		}

		annotated = append(annotated, record)
	}

	return annotated
}

// scoringText cleans the body and condenses it when it exceeds the model
// input budget. Only the scoring input changes; the stored text stays as
// fetched.
func (e *Engine) scoringText(ctx context.Context, text string) string {
	cleaned := sentiment.CleanText(text)
	if utf8.RuneCountInString(cleaned) <= maxModelInputRunes {
		return cleaned
	}

	if e.summarizer != nil {
		summary, err := e.summarizer.Summarize(ctx, cleaned)
		if err == nil && summary != "" {
			return summary
		}
		slog.Warn("[AnnotationEngine] Summarization failed, truncating instead",
			slog.Any("error", err))
	}

	runes := []rune(cleaned)
	return string(runes[:maxModelInputRunes])
}

// applyModelResult fills the generic sentiment trio from whichever model ran
// and the model's own namespace columns. Label thresholds already happened
// inside the model; they are never re-derived here.
func applyModelResult(record *models.AnnotatedComment, modelName string, result sentiment.Result) {
	record.SentimentScore = result.Polarity
	record.SentimentLabel = result.Label
	record.Subjectivity = result.Subjectivity

	switch modelName {
	case sentiment.ModelVader:
		compound := result.Polarity
		label := result.Label
		record.VaderCompound = &compound
		record.VaderPositive = result.Positive
		record.VaderNeutral = result.Neutral
		record.VaderNegative = result.Negative
		record.VaderLabel = &label
	case sentiment.ModelTransformer:
		label := result.Label
		record.TransformerSentiment = &label
		record.TPositive = result.Positive
		record.TNegative = result.Negative
		record.TNeutral = result.Neutral
	}
}

// zeroEmotions rewrites already-annotated records onto the placeholder path
// so a mid-batch scorer failure never leaves partial emotion columns.
func zeroEmotions(annotated []models.AnnotatedComment) {
	for i := range annotated {
		annotated[i].EmotionScores = emotion.Zeroed()
		annotated[i].DominantEmotion = models.DominantEmotionNone
	}
}
