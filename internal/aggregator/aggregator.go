package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/harshduche/maffb/internal/feeds"
	"github.com/harshduche/maffb/internal/models"
)

// ErrNoPosts signals that every blog source came up empty across all of its
// candidate feeds. Callers decide whether to fall back or stop.
var ErrNoPosts = errors.New("no posts found from any rss feeds")

type Aggregator struct {
	locator *feeds.Locator
	fetcher *feeds.Fetcher
}

func New() *Aggregator {
	return &Aggregator{
		locator: feeds.NewLocator(),
		fetcher: feeds.NewFetcher(),
	}
}

// LoadSources reads the blog source list from a JSON file.
func LoadSources(path string) ([]models.BlogSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blog sources: %w", err)
	}

	var sources []models.BlogSource
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parsing blog sources: %w", err)
	}

	return sources, nil
}

// Aggregate walks every blog source, tries its candidate feed URLs in order
// and keeps the first one that yields posts. All collected posts are merged
// and sorted newest first. Returns ErrNoPosts when nothing was found.
func (a *Aggregator) Aggregate(ctx context.Context, sources []models.BlogSource, topic string, maxPosts int) (*models.ExtractionResult, error) {
	var extracted []models.Post

	for _, source := range sources {
		candidates := a.locator.Locate(source.URL)

		for _, rssURL := range candidates {
			posts, err := a.fetcher.FetchAndFilter(ctx, rssURL, source.Name, source.URL, topic, maxPosts)
			if err != nil {
				log.WithFields(log.Fields{
					"blog": source.Name,
					"feed": rssURL,
				}).Warnf("Feed fetch failed: %v", err)
				continue
			}
			if len(posts) > 0 {
				log.WithFields(log.Fields{
					"blog":  source.Name,
					"feed":  rssURL,
					"posts": len(posts),
				}).Info("Extracted posts from feed")
				extracted = append(extracted, posts...)
				break
			}
		}
	}

	if len(extracted) == 0 {
		return nil, ErrNoPosts
	}

	models.SortNewestFirst(extracted)

	return &models.ExtractionResult{
		Topic:          topic,
		TotalPosts:     len(extracted),
		ExtractionDate: time.Now(),
		Posts:          extracted,
	}, nil
}
