package sentiment

import "commentpulse/internal/utils"

// Labeling cutoffs for the pattern lexicon. Looser than VADER's on purpose;
// the two threshold sets are never mixed.
const (
	lexiconPositiveThreshold = 0.1
	lexiconNegativeThreshold = -0.1
)

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// Word-to-valence weights in TextBlob's pattern-lexicon style. Scores are
// averaged over matched tokens; unmatched text is neutral.
var patternLexicon = map[string]lexiconEntry{
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"beautiful":   {0.85, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"brilliant":   {0.9, 0.9},
	"cool":        {0.35, 0.65},
	"enjoy":       {0.4, 0.5},
	"enjoyed":     {0.4, 0.5},
	"excellent":   {1.0, 1.0},
	"excited":     {0.375, 0.75},
	"fantastic":   {0.4, 0.9},
	"favorite":    {0.41, 0.72},
	"fun":         {0.3, 0.2},
	"funny":       {0.25, 0.9},
	"glad":        {0.5, 1.0},
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"happy":       {0.8, 1.0},
	"helpful":     {0.4, 0.3},
	"impressive":  {1.0, 1.0},
	"interesting": {0.5, 0.5},
	"like":        {0.3, 0.4},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"nice":        {0.6, 1.0},
	"perfect":     {1.0, 1.0},
	"thanks":      {0.2, 0.2},
	"win":         {0.4, 0.4},
	"wonderful":   {1.0, 1.0},

	"angry":         {-0.5, 1.0},
	"annoying":      {-0.8, 1.0},
	"awful":         {-1.0, 1.0},
	"bad":           {-0.7, 0.67},
	"boring":        {-1.0, 1.0},
	"broken":        {-0.4, 0.5},
	"cringe":        {-0.6, 0.9},
	"disappointed":  {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"dumb":          {-0.7, 0.8},
	"fail":          {-0.5, 0.5},
	"fake":          {-0.5, 0.7},
	"garbage":       {-0.8, 0.9},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.9, 0.7},
	"horrible":      {-1.0, 1.0},
	"mess":          {-0.4, 0.6},
	"pathetic":      {-1.0, 1.0},
	"poor":          {-0.4, 0.6},
	"sad":           {-0.5, 1.0},
	"scary":         {-0.6, 1.0},
	"stupid":        {-0.8, 0.9},
	"sucks":         {-0.7, 0.9},
	"terrible":      {-1.0, 1.0},
	"trash":         {-0.8, 0.9},
	"ugly":          {-0.7, 1.0},
	"useless":       {-0.25, 0.33},
	"waste":         {-0.3, 0.4},
	"worst":         {-1.0, 1.0},
	"wrong":         {-0.5, 0.5},
}

// Modifier words scale the polarity of the word that follows them.
var intensifiers = map[string]float64{
	"absolutely": 1.4,
	"extremely":  1.5,
	"pretty":     1.1,
	"really":     1.3,
	"slightly":   0.8,
	"so":         1.2,
	"somewhat":   0.8,
	"totally":    1.3,
	"very":       1.3,
}

var negations = map[string]bool{
	"aint": true, "arent": true, "cant": true, "couldnt": true,
	"didnt": true, "doesnt": true, "dont": true, "isnt": true,
	"never": true, "no": true, "not": true, "shouldnt": true,
	"wasnt": true, "wont": true, "wouldnt": true,
}

// LexiconModel scores text by averaging fixed word-to-valence weights, with
// negation flipping and intensifier scaling in the two preceding tokens.
// There is no training or inference step; scoring is fully deterministic.
type LexiconModel struct{}

func NewLexiconModel() *LexiconModel { return &LexiconModel{} }

func (m *LexiconModel) Name() string { return ModelLexicon }

func (m *LexiconModel) Score(text string) Result {
	tokens := utils.Tokenize(text)

	var polaritySum, subjectivitySum float64
	matched := 0

	for i, token := range tokens {
		entry, ok := patternLexicon[token]
		if !ok {
			continue
		}

		polarity := entry.polarity
		if i > 0 {
			if boost, ok := intensifiers[tokens[i-1]]; ok {
				polarity *= boost
			}
		}
		if isNegated(tokens, i) {
			polarity *= -0.5
		}
		polaritySum += clamp(polarity, -1, 1)
		subjectivitySum += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return Result{Polarity: 0.0, Label: LabelNeutral, Subjectivity: ptr(0.0)}
	}

	polarity := polaritySum / float64(matched)

	label := LabelNeutral
	if polarity > lexiconPositiveThreshold {
		label = LabelPositive
	} else if polarity < lexiconNegativeThreshold {
		label = LabelNegative
	}

	return Result{
		Polarity:     polarity,
		Label:        label,
		Subjectivity: ptr(subjectivitySum / float64(matched)),
	}
}

// isNegated reports whether either of the two tokens before position i is a
// negation word.
func isNegated(tokens []string, i int) bool {
	for j := i - 2; j < i; j++ {
		if j >= 0 && negations[tokens[j]] {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
