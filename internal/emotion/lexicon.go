package emotion

import (
	"commentpulse/internal/models"
	"commentpulse/internal/utils"
)

// Scorer produces raw (non-normalized) counts over the fixed 8-emotion
// vocabulary. A failing scorer makes the annotation engine fall back to the
// zeroed placeholder path for the whole batch.
type Scorer interface {
	Score(text string) (map[string]float64, error)
}

// emotionLexicon maps words to the emotions they evoke, NRC style. A word
// may carry several emotions; each occurrence adds one count per emotion.
var emotionLexicon = map[string][]string{
	"abandon":    {"fear", "sadness"},
	"abuse":      {"anger", "disgust", "fear", "sadness"},
	"accident":   {"fear", "sadness", "surprise"},
	"achieve":    {"joy", "trust"},
	"admire":     {"joy", "trust"},
	"adore":      {"joy", "trust"},
	"afraid":     {"fear"},
	"aggressive": {"anger", "fear"},
	"alarm":      {"fear", "surprise"},
	"amazing":    {"joy", "surprise"},
	"angry":      {"anger"},
	"anxious":    {"anticipation", "fear"},
	"attack":     {"anger", "fear"},
	"awful":      {"anger", "disgust", "fear", "sadness"},
	"bad":        {"anger", "disgust", "fear", "sadness"},
	"beautiful":  {"joy"},
	"betray":     {"anger", "disgust", "sadness", "surprise"},
	"blame":      {"anger", "disgust"},
	"bless":      {"joy", "trust"},
	"brave":      {"fear", "trust"},
	"brilliant":  {"joy"},
	"broken":     {"fear", "sadness"},
	"calm":       {"trust"},
	"celebrate":  {"anticipation", "joy", "surprise"},
	"cheat":      {"anger", "disgust"},
	"cheer":      {"anticipation", "joy"},
	"confident":  {"joy", "trust"},
	"crash":      {"fear", "surprise"},
	"crazy":      {"anger", "fear", "surprise"},
	"cruel":      {"anger", "disgust", "fear"},
	"cry":        {"sadness"},
	"danger":     {"fear"},
	"dead":       {"fear", "sadness"},
	"death":      {"anger", "fear", "sadness", "surprise"},
	"delight":    {"anticipation", "joy", "surprise"},
	"depressed":  {"sadness"},
	"despair":    {"fear", "sadness"},
	"destroy":    {"anger", "fear", "sadness"},
	"disgusting": {"disgust"},
	"disaster":   {"fear", "sadness", "surprise"},
	"dream":      {"anticipation", "joy"},
	"eager":      {"anticipation", "joy"},
	"enemy":      {"anger", "fear"},
	"evil":       {"anger", "disgust", "fear", "sadness"},
	"excited":    {"anticipation", "joy", "surprise"},
	"expect":     {"anticipation"},
	"fail":       {"sadness"},
	"faith":      {"joy", "trust"},
	"fantastic":  {"joy", "surprise"},
	"fear":       {"fear"},
	"fight":      {"anger", "fear"},
	"friend":     {"joy", "trust"},
	"fun":        {"anticipation", "joy"},
	"furious":    {"anger"},
	"gift":       {"anticipation", "joy", "surprise"},
	"gross":      {"disgust"},
	"happy":      {"anticipation", "joy", "trust"},
	"hate":       {"anger", "disgust", "fear", "sadness"},
	"honest":     {"joy", "trust"},
	"hope":       {"anticipation", "joy", "trust"},
	"hopeless":   {"fear", "sadness"},
	"horrible":   {"anger", "disgust", "fear"},
	"hurt":       {"anger", "fear", "sadness"},
	"kill":       {"anger", "fear", "sadness"},
	"laugh":      {"joy", "surprise"},
	"lie":        {"anger", "disgust", "sadness"},
	"lonely":     {"sadness"},
	"lose":       {"anger", "sadness"},
	"love":       {"joy"},
	"lovely":     {"anticipation", "joy", "trust"},
	"loyal":      {"joy", "trust"},
	"lucky":      {"joy", "surprise"},
	"mad":        {"anger", "fear", "sadness"},
	"miracle":    {"joy", "surprise", "trust"},
	"miss":       {"sadness"},
	"murder":     {"anger", "disgust", "fear", "sadness", "surprise"},
	"nasty":      {"anger", "disgust"},
	"nervous":    {"anticipation", "fear"},
	"nightmare":  {"fear"},
	"panic":      {"fear"},
	"peace":      {"anticipation", "joy", "trust"},
	"perfect":    {"anticipation", "joy", "trust"},
	"poison":     {"disgust", "fear"},
	"pray":       {"anticipation", "joy", "trust"},
	"proud":      {"joy", "trust"},
	"rage":       {"anger"},
	"respect":    {"joy", "trust"},
	"rotten":     {"disgust"},
	"sad":        {"sadness"},
	"safe":       {"joy", "trust"},
	"scared":     {"fear"},
	"scream":     {"anger", "fear", "surprise"},
	"shock":      {"anger", "fear", "surprise"},
	"sick":       {"disgust", "sadness"},
	"smile":      {"joy", "surprise", "trust"},
	"sorry":      {"sadness"},
	"steal":      {"anger", "disgust", "fear", "sadness"},
	"stink":      {"disgust"},
	"strong":     {"joy", "trust"},
	"stupid":     {"anger", "disgust"},
	"success":    {"anticipation", "joy", "trust"},
	"sudden":     {"surprise"},
	"surprise":   {"surprise"},
	"terrible":   {"anger", "disgust", "fear", "sadness"},
	"terror":     {"fear"},
	"threat":     {"anger", "fear"},
	"tragedy":    {"fear", "sadness"},
	"trust":      {"trust"},
	"ugly":       {"disgust"},
	"unexpected": {"surprise"},
	"unfair":     {"anger", "sadness"},
	"victory":    {"anticipation", "joy", "trust"},
	"violence":   {"anger", "fear"},
	"wait":       {"anticipation"},
	"war":        {"anger", "fear", "sadness"},
	"warm":       {"joy", "trust"},
	"weird":      {"disgust", "surprise"},
	"win":        {"anticipation", "joy", "surprise"},
	"wish":       {"anticipation"},
	"wonderful":  {"joy", "surprise", "trust"},
	"worry":      {"anticipation", "fear", "sadness"},
	"wrong":      {"sadness"},
}

// LexiconScorer counts emotion-lexicon word occurrences. Deterministic, no
// external calls.
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer { return &LexiconScorer{} }

func (s *LexiconScorer) Score(text string) (map[string]float64, error) {
	scores := Zeroed()
	for _, token := range utils.Tokenize(text) {
		for _, emo := range emotionLexicon[token] {
			scores[emo]++
		}
	}
	return scores, nil
}

// Zeroed returns the placeholder score set: every emotion present, all 0.0.
func Zeroed() map[string]float64 {
	scores := make(map[string]float64, len(models.EmotionVocabulary))
	for _, emo := range models.EmotionVocabulary {
		scores[emo] = 0.0
	}
	return scores
}

// Dominant returns the emotion with the highest score, ties broken by the
// first emotion reaching the maximum in vocabulary order.
func Dominant(scores map[string]float64) string {
	dominant := models.EmotionVocabulary[0]
	best := scores[dominant]
	for _, emo := range models.EmotionVocabulary[1:] {
		if scores[emo] > best {
			best = scores[emo]
			dominant = emo
		}
	}
	return dominant
}
