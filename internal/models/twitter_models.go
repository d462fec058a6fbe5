package models

// TwitterRawComment keeps the reply endpoint field names (full_text,
// favorite_count) until normalization.
type TwitterRawComment struct {
	ID            string `json:"id"`
	TweetID       string `json:"tweet_id"`
	Username      string `json:"username"`
	FullText      string `json:"full_text"`
	FavoriteCount int    `json:"favorite_count"`
	CreatedAt     string `json:"created_at"` // RFC3339 with trailing Z
}

type TwitterRepliesResponse struct {
	Data []TwitterReply `json:"data"`
}

type TwitterReply struct {
	ID     string `json:"id"`
	Author struct {
		Username string `json:"username"`
	} `json:"author"`
	FullText      string `json:"full_text"`
	CreatedAt     string `json:"created_at"`
	FavoriteCount int    `json:"favorite_count"`
}
