package models

import (
	"sort"
	"time"
)

type BlogSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Post struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Published   string    `json:"published"`
	PublishedAt time.Time `json:"-"`
	Summary     string    `json:"summary"`
	BlogName    string    `json:"blog_name"`
	BlogURL     string    `json:"blog_url"`
	RSSURL      string    `json:"rss_url"`
	ExtractedAt time.Time `json:"extracted_at"`
}

type ExtractionResult struct {
	Topic          string    `json:"topic"`
	TotalPosts     int       `json:"total_posts"`
	ExtractionDate time.Time `json:"extraction_date"`
	Posts          []Post    `json:"posts"`
}

type RecipientEntry struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type BlogSummary struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
}

// SortNewestFirst orders posts by publish time, newest first. Parsed
// timestamps take priority; posts without one are compared by their raw
// published string.
func SortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.PublishedAt.IsZero() && !b.PublishedAt.IsZero() {
			return a.PublishedAt.After(b.PublishedAt)
		}
		return a.Published > b.Published
	})
}
