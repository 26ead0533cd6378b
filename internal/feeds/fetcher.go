package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/harshduche/maffb/internal/models"
)

type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		parser: gofeed.NewParser(),
	}
}

// FetchAndFilter downloads a candidate feed URL and returns up to maxPosts
// entries relevant to the topic. Today's posts are preferred: when any entry
// was published on the current UTC date only those are returned, otherwise
// the latest entries regardless of date. A non-200 response or an
// unparseable document yields an empty result, not an error.
func (f *Fetcher) FetchAndFilter(ctx context.Context, feedURL, blogName, blogURL, topic string, maxPosts int) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request for %s: %w", feedURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed %s: %w", feedURL, err)
	}

	feed, err := f.parser.ParseString(string(body))
	if err != nil {
		log.Debugf("Skipping malformed feed %s: %v", feedURL, err)
		return nil, nil
	}

	keywords := strings.Fields(strings.ToLower(topic))
	today := time.Now().UTC()

	var todayPosts, otherPosts []models.Post
	for _, item := range feed.Items {
		haystack := strings.ToLower(item.Title + " " + item.Description + " " + item.Content)
		relevant := lo.SomeBy(keywords, func(keyword string) bool {
			return strings.Contains(haystack, keyword)
		})
		if !relevant {
			continue
		}

		post := models.Post{
			Title:       item.Title,
			Link:        item.Link,
			Published:   item.Published,
			Summary:     item.Description,
			BlogName:    blogName,
			BlogURL:     blogURL,
			RSSURL:      feedURL,
			ExtractedAt: time.Now(),
		}
		if post.Title == "" {
			post.Title = "No Title"
		}
		if item.PublishedParsed != nil {
			post.PublishedAt = *item.PublishedParsed
		}

		if publishedToday(item.PublishedParsed, today) {
			todayPosts = append(todayPosts, post)
		} else {
			otherPosts = append(otherPosts, post)
		}
	}

	// Strictly either/or: today's posts are never padded with older ones.
	picked := todayPosts
	if len(picked) == 0 {
		picked = otherPosts
	}

	models.SortNewestFirst(picked)
	if len(picked) > maxPosts {
		picked = picked[:maxPosts]
	}

	return picked, nil
}

// publishedToday reports whether the entry was published on the current UTC
// calendar date. Entries without a parseable date never count as today.
func publishedToday(published *time.Time, now time.Time) bool {
	if published == nil {
		return false
	}
	y1, m1, d1 := published.UTC().Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
