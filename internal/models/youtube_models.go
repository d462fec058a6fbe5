package models

// YouTubeRawComment carries the Data API field names as fetched, before
// normalization renames them.
type YouTubeRawComment struct {
	CommentID         string `json:"comment_id"`
	VideoID           string `json:"video_id"`
	AuthorDisplayName string `json:"author_display_name"`
	TextDisplay       string `json:"text_display"`
	LikeCount         int    `json:"like_count"`
	PublishedAt       string `json:"published_at"` // RFC3339 as returned by the API
}

type YouTubeCommentThreadsResponse struct {
	NextPageToken string              `json:"nextPageToken"`
	Items         []YouTubeThreadItem `json:"items"`
	Error         *YouTubeAPIError    `json:"error,omitempty"`
}

type YouTubeThreadItem struct {
	ID      string `json:"id"`
	Snippet struct {
		VideoID         string `json:"videoId"`
		TopLevelComment struct {
			Snippet YouTubeCommentSnippet `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

type YouTubeCommentSnippet struct {
	AuthorDisplayName string `json:"authorDisplayName"`
	TextDisplay       string `json:"textDisplay"`
	LikeCount         int    `json:"likeCount"`
	PublishedAt       string `json:"publishedAt"`
}

type YouTubeAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
