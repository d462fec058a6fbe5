package sentiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const (
	DefaultTransformerDir = "./models"

	transformerModelName = "cardiffnlp/twitter-roberta-base-sentiment-latest"
)

// TransformerModel runs an ONNX sentiment classifier through hugot. The
// model is downloaded on first use. Construction fails with
// ErrModelUnavailable when no ONNX runtime is present, which the annotation
// engine treats as a degradation, not an error.
type TransformerModel struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewTransformerModel(modelDir string) (*TransformerModel, error) {
	modelPath := filepath.Join(modelDir, strings.ReplaceAll(transformerModelName, "/", "_"))

	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[TransformerModel] Model not found, downloading...",
			slog.String("model", transformerModelName))
		downloaded, err := hugot.DownloadModel(transformerModelName, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("%w: download failed: %v", ErrModelUnavailable, err)
		}
		modelPath = downloaded
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "commentSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return &TransformerModel{session: session, pipeline: pipeline}, nil
}

func (m *TransformerModel) Name() string { return ModelTransformer }

func (m *TransformerModel) Score(text string) Result {
	neutral := Result{Polarity: 0.0, Label: LabelNeutral}
	if strings.TrimSpace(text) == "" {
		return neutral
	}

	output, err := m.pipeline.RunPipeline([]string{text})
	if err != nil {
		slog.Warn("[TransformerModel] Inference failed, returning neutral",
			slog.String("error", err.Error()))
		return neutral
	}

	raw := output.GetOutput()
	if len(raw) == 0 {
		return neutral
	}
	classes, ok := raw[0].([]pipelines.ClassificationOutput)
	if !ok || len(classes) == 0 {
		slog.Warn("[TransformerModel] Unexpected pipeline output shape")
		return neutral
	}

	result := Result{Label: LabelNeutral}
	var bestScore float64
	for _, class := range classes {
		score := float64(class.Score)
		switch strings.ToLower(class.Label) {
		case LabelPositive:
			result.Positive = ptr(score)
		case LabelNegative:
			result.Negative = ptr(score)
		case LabelNeutral:
			result.Neutral = ptr(score)
		}
		if score > bestScore {
			bestScore = score
			result.Label = strings.ToLower(class.Label)
		}
	}

	// Polarity is the signed gap between the positive and negative class
	// scores, so it lands in [-1,1] like the other models.
	var pos, neg float64
	if result.Positive != nil {
		pos = *result.Positive
	}
	if result.Negative != nil {
		neg = *result.Negative
	}
	result.Polarity = pos - neg

	return result
}

// Close releases the ONNX session. Safe to call once at process shutdown.
func (m *TransformerModel) Close() {
	if m.session != nil {
		m.session.Destroy()
	}
}
