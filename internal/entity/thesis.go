package entity

// Source is a news item cited by a thesis bullet.
type Source struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

// CitedBullet is one catalyst statement and the news items it relies on.
type CitedBullet struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// SourceFromNews builds the citation for a news item.
func SourceFromNews(n NewsItem) Source {
	return Source{Title: n.Title, Link: n.Link, Source: n.Source}
}
