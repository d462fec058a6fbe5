package models

import "time"

type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformReddit    Platform = "reddit"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
)

// EmotionVocabulary is the fixed emotion column set, in the canonical order
// used to break dominant-emotion ties.
var EmotionVocabulary = []string{
	"anger", "anticipation", "disgust", "fear",
	"joy", "sadness", "surprise", "trust",
}

const DominantEmotionNone = "none"

// RawComment is a tagged variant: exactly one of the platform pointers is
// set, matching Platform. Adapters emit it, the normalizer consumes it, and
// it is discarded after normalization.
type RawComment struct {
	Platform  Platform
	YouTube   *YouTubeRawComment
	Reddit    *RedditRawComment
	Twitter   *TwitterRawComment
	Instagram *InstagramRawComment
}

// CanonicalComment is the shape every downstream stage relies on. CommentID,
// Platform and Text are always non-empty after normalization; Text may be ""
// only when the source body was missing.
type CanonicalComment struct {
	CommentID   string     `json:"comment_id" dynamodbav:"comment_id"`
	PostID      string     `json:"post_id" dynamodbav:"post_id"`
	Platform    Platform   `json:"platform" dynamodbav:"platform"`
	Author      string     `json:"author" dynamodbav:"author"`
	Text        string     `json:"text" dynamodbav:"text"`
	PublishedAt *time.Time `json:"published_at,omitempty" dynamodbav:"published_at,omitempty"`
	LikeCount   int        `json:"like_count" dynamodbav:"like_count"`
}

// AnnotatedComment enriches a CanonicalComment with model outputs. The
// generic sentiment trio always comes from the model chosen for the run;
// the namespaced pointer fields are set only when that model produced them.
type AnnotatedComment struct {
	CanonicalComment

	SentimentScore float64  `json:"sentiment_score" dynamodbav:"sentiment_score"`
	Subjectivity   *float64 `json:"subjectivity,omitempty" dynamodbav:"subjectivity,omitempty"`
	SentimentLabel string   `json:"sentiment_label" dynamodbav:"sentiment_label"`

	VaderCompound *float64 `json:"vader_compound,omitempty" dynamodbav:"vader_compound,omitempty"`
	VaderPositive *float64 `json:"vader_positive,omitempty" dynamodbav:"vader_positive,omitempty"`
	VaderNeutral  *float64 `json:"vader_neutral,omitempty" dynamodbav:"vader_neutral,omitempty"`
	VaderNegative *float64 `json:"vader_negative,omitempty" dynamodbav:"vader_negative,omitempty"`
	VaderLabel    *string  `json:"vader_label,omitempty" dynamodbav:"vader_label,omitempty"`

	TransformerSentiment *string  `json:"transformer_sentiment,omitempty" dynamodbav:"transformer_sentiment,omitempty"`
	TPositive            *float64 `json:"t_positive,omitempty" dynamodbav:"t_positive,omitempty"`
	TNegative            *float64 `json:"t_negative,omitempty" dynamodbav:"t_negative,omitempty"`
	TNeutral             *float64 `json:"t_neutral,omitempty" dynamodbav:"t_neutral,omitempty"`

	EmotionScores   map[string]float64 `json:"emotion_scores" dynamodbav:"emotion_scores"`
	DominantEmotion string             `json:"dominant_emotion" dynamodbav:"dominant_emotion"`
}
