package models

// InstagramRawComment keeps the graphql node field names until normalization.
type InstagramRawComment struct {
	ID               string `json:"id"`
	Shortcode        string `json:"shortcode"`
	OwnerUsername    string `json:"owner_username"`
	Text             string `json:"text"`
	CreatedAt        int64  `json:"created_at"` // unix seconds
	EdgeLikedByCount int    `json:"edge_liked_by_count"`
}

type InstagramMediaResponse struct {
	GraphQL struct {
		ShortcodeMedia struct {
			EdgeMediaToParentComment struct {
				Edges []InstagramCommentEdge `json:"edges"`
			} `json:"edge_media_to_parent_comment"`
		} `json:"shortcode_media"`
	} `json:"graphql"`
}

type InstagramCommentEdge struct {
	Node struct {
		ID    string `json:"id"`
		Owner struct {
			Username string `json:"username"`
		} `json:"owner"`
		Text        string `json:"text"`
		CreatedAt   int64  `json:"created_at"`
		EdgeLikedBy struct {
			Count int `json:"count"`
		} `json:"edge_liked_by"`
	} `json:"node"`
}
