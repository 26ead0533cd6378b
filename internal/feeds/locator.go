package feeds

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// Common suffixes most blog engines expose a feed under.
var basePatterns = []string{
	"/rss",
	"/feed",
	"/rss.xml",
	"/feed.xml",
	"/atom.xml",
	"/rss/",
	"/feed/",
}

// Extra suffixes worth trying when the blog page itself mentions a feed.
var probePatterns = []string{
	"/rss/feed",
	"/feed/rss",
	"/blog/rss",
	"/blog/feed",
}

const probeBodyLimit = 1 << 20

type Locator struct {
	client *http.Client
}

func NewLocator() *Locator {
	return &Locator{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Locate returns candidate feed URLs for a blog, most conventional first.
// None of the candidates are validated here; the fetcher decides which one
// actually works.
func (l *Locator) Locate(blogURL string) []string {
	candidates := make([]string, 0, len(basePatterns)+len(probePatterns))
	for _, pattern := range basePatterns {
		candidates = append(candidates, blogURL+pattern)
	}

	if l.pageMentionsFeed(blogURL) {
		for _, pattern := range probePatterns {
			candidates = append(candidates, blogURL+pattern)
		}
	}

	return candidates
}

// pageMentionsFeed does a best-effort GET of the blog page and looks for
// "rss" or "feed" in the body. Any failure means no extra candidates.
func (l *Locator) pageMentionsFeed(blogURL string) bool {
	resp, err := l.client.Get(blogURL)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, probeBodyLimit))
	if err != nil {
		return false
	}

	page := strings.ToLower(string(body))
	return strings.Contains(page, "rss") || strings.Contains(page, "feed")
}
