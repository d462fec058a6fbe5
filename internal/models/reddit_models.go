package models

// RedditRawComment keeps the listing field names (body, ups, created_utc)
// until normalization.
type RedditRawComment struct {
	ID         string  `json:"id"`
	LinkID     string  `json:"link_id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Ups        int     `json:"ups"`
	CreatedUTC float64 `json:"created_utc"`
}

// RedditListing is one element of the two-listing array returned by a post's
// .json endpoint; comments live in the second element's t1 children.
type RedditListing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string        `json:"after"`
		Children []RedditChild `json:"children"`
	} `json:"data"`
}

type RedditChild struct {
	Kind string           `json:"kind"`
	Data RedditRawComment `json:"data"`
}
