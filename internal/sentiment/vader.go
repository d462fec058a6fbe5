package sentiment

import "github.com/jonreiter/govader"

// Standard VADER cutoffs. These apply to compound scores only and are never
// reused to label another model's polarity.
const (
	vaderPositiveThreshold = 0.05
	vaderNegativeThreshold = -0.05
)

// VaderModel wraps the rule-based VADER analyzer. The compound score in
// [-1,1] is the polarity; pos/neu/neg component ratios are carried alongside.
type VaderModel struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderModel() *VaderModel {
	return &VaderModel{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (m *VaderModel) Name() string { return ModelVader }

func (m *VaderModel) Score(text string) Result {
	sentiment := m.analyzer.PolarityScores(text)

	label := LabelNeutral
	if sentiment.Compound >= vaderPositiveThreshold {
		label = LabelPositive
	} else if sentiment.Compound <= vaderNegativeThreshold {
		label = LabelNegative
	}

	return Result{
		Polarity: sentiment.Compound,
		Label:    label,
		Positive: ptr(sentiment.Positive),
		Neutral:  ptr(sentiment.Neutral),
		Negative: ptr(sentiment.Negative),
	}
}
