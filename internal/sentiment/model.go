package sentiment

import (
	"errors"
	"fmt"
)

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

const (
	ModelLexicon     = "lexicon"
	ModelVader       = "vader"
	ModelTransformer = "transformer"
)

// ErrModelUnavailable signals that a requested model could not be
// constructed; the annotation engine degrades instead of failing the batch.
var ErrModelUnavailable = errors.New("sentiment model unavailable")

// Result is one model's full output for a single text. Polarity and Label
// are always set; the remaining fields depend on the model variant.
// Each model applies its own label thresholds, which are not interchangeable
// across variants.
type Result struct {
	Polarity float64
	Label    string

	// Subjectivity is produced by the pattern-lexicon model only.
	Subjectivity *float64

	// Positive/Neutral/Negative hold VADER's component ratios or the
	// transformer's class scores.
	Positive *float64
	Neutral  *float64
	Negative *float64
}

// Model scores a single text. Implementations are pure functions of their
// input: no hidden state, same text always yields the same Result.
type Model interface {
	Name() string
	Score(text string) Result
}

// NewModel constructs the model for an explicit choice. The transformer
// variant may fail with ErrModelUnavailable when no ONNX runtime is present.
func NewModel(choice string) (Model, error) {
	switch choice {
	case ModelLexicon, "":
		return NewLexiconModel(), nil
	case ModelVader:
		return NewVaderModel(), nil
	case ModelTransformer:
		return NewTransformerModel(DefaultTransformerDir)
	default:
		return nil, fmt.Errorf("%w: unknown model %q", ErrModelUnavailable, choice)
	}
}

func ptr(v float64) *float64 { return &v }
