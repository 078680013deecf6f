package entity

import "time"

// SocialPost is a post mentioning a ticker.
type SocialPost struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Reposts   int       `json:"retweets"`
	AuthorID  string    `json:"author_id"`
	PostID    string    `json:"tweet_id"`
}

// Engagement is likes plus reposts.
func (p SocialPost) Engagement() int {
	return p.Likes + p.Reposts
}
