package sentiment

import "testing"

func TestVaderScoreLabels(t *testing.T) {
	model := NewVaderModel()

	cases := []struct {
		text string
		want string
	}{
		{"I absolutely love this, it is wonderful!", LabelPositive},
		{"This is horrible, I hate it so much.", LabelNegative},
		{"The video is twelve minutes long.", LabelNeutral},
	}
	for _, tc := range cases {
		result := model.Score(tc.text)
		if result.Label != tc.want {
			t.Errorf("Score(%q).Label = %q (compound %v), want %q",
				tc.text, result.Label, result.Polarity, tc.want)
		}
	}
}

func TestVaderThresholds(t *testing.T) {
	model := NewVaderModel()

	// The label must follow the compound score and the ±0.05 cutoffs,
	// whatever the analyzer returns for a given text.
	for _, text := range []string{
		"great", "terrible", "fine", "ok", "meh",
		"I love it", "I hate it", "it exists",
	} {
		result := model.Score(text)
		want := LabelNeutral
		if result.Polarity >= 0.05 {
			want = LabelPositive
		} else if result.Polarity <= -0.05 {
			want = LabelNegative
		}
		if result.Label != want {
			t.Errorf("Score(%q): compound %v labeled %q, want %q",
				text, result.Polarity, result.Label, want)
		}
	}
}

func TestVaderComponentsPresent(t *testing.T) {
	model := NewVaderModel()

	result := model.Score("good stuff")
	if result.Positive == nil || result.Neutral == nil || result.Negative == nil {
		t.Fatal("component ratios missing from result")
	}
	if result.Subjectivity != nil {
		t.Errorf("vader must not emit subjectivity, got %v", *result.Subjectivity)
	}
}

func TestVaderEmptyTextIsNeutral(t *testing.T) {
	model := NewVaderModel()

	result := model.Score("")
	if result.Polarity != 0.0 || result.Label != LabelNeutral {
		t.Errorf("got %v/%q, want 0.0/neutral", result.Polarity, result.Label)
	}
}
