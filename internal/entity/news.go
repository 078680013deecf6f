package entity

import "time"

// NewsItem is one dated article from a news feed. Link identifies the item.
type NewsItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
	Source    string    `json:"source"`
}
