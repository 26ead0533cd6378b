// Package readme maintains the daily digest section of the project README.
// The document is treated as a sequence of level-two sections; the digest
// section is replaced or inserted as a whole, everything else is preserved
// verbatim.
package readme

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	SummaryHeading  = "## 📅 Daily Blog Summary"
	featuresHeading = "## Features"

	// DefaultTitle heads each dated digest inside the summary section.
	DefaultTitle = "Daily Engineering Blog Digest"
)

type Updater struct {
	path string
}

func NewUpdater(path string) *Updater {
	return &Updater{path: path}
}

// Upsert writes the digest into the README's summary section. The section is
// created when missing (before "## Features" if that anchor exists, at the
// end otherwise) and fully replaced when present, so repeated runs never
// accumulate duplicates. A missing README is synthesized from the default
// template. The file is rewritten whole.
func (u *Updater) Upsert(summaryContent, title, date string) error {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if title == "" {
		title = DefaultTitle
	}

	formatted := FormatDailySummary(summaryContent, title, date)

	var updated string
	current, err := os.ReadFile(u.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		updated = defaultReadme(formatted)
	case err != nil:
		return fmt.Errorf("reading readme: %w", err)
	default:
		updated = upsertSection(string(current), formatted)
	}

	if err := os.WriteFile(u.path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing readme: %w", err)
	}

	log.WithFields(log.Fields{
		"path": u.path,
		"date": date,
	}).Info("README updated with daily blog summary")
	return nil
}

// WriteSummaryArtifact persists the standalone digest markdown file produced
// alongside the README update.
func WriteSummaryArtifact(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing summary artifact: %w", err)
	}
	return nil
}

// FormatDailySummary renders the dated digest that lives under the summary
// heading. Headings in the content are releveled to nest below the dated
// title line.
func FormatDailySummary(content, title, date string) string {
	var b strings.Builder
	b.WriteString("### 📰 " + title + " - " + date + "\n\n")

	for _, section := range strings.Split(content, "\n\n") {
		chunk := strings.TrimSpace(section)
		switch {
		case chunk == "":
		case strings.HasPrefix(chunk, "#"):
			text := strings.TrimSpace(strings.TrimLeft(chunk, "#"))
			switch headingLevel(chunk) {
			case 1:
				b.WriteString("#### " + text + "\n\n")
			case 2:
				b.WriteString("##### " + text + "\n\n")
			default:
				b.WriteString("###### " + text + "\n\n")
			}
		case isListItem(chunk):
			b.WriteString(chunk + "\n")
		case strings.Contains(chunk, "http") && containsSourceKeyword(chunk):
			b.WriteString("🔗 **Source:** " + chunk + "\n\n")
		case strings.Contains(chunk, "**") || strings.Contains(chunk, "__"):
			b.WriteString(chunk + "\n\n")
		default:
			b.WriteString(chunk + "\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// upsertSection splices the formatted digest into the document. The summary
// section spans from its heading to the next level-two heading, so the dated
// subheading and everything under it is replaced in one piece.
func upsertSection(current, formatted string) string {
	lines := strings.Split(current, "\n")

	digestLines := append([]string{SummaryHeading, ""}, strings.Split(formatted, "\n")...)
	digestLines = append(digestLines, "")

	if start := findHeading(lines, SummaryHeading); start >= 0 {
		end := nextSectionStart(lines, start+1)
		var out []string
		out = append(out, lines[:start]...)
		out = append(out, digestLines...)
		out = append(out, lines[end:]...)
		return strings.Join(out, "\n")
	}

	if anchor := findHeading(lines, featuresHeading); anchor >= 0 {
		insertion := digestLines
		if anchor == 0 || strings.TrimSpace(lines[anchor-1]) != "" {
			insertion = append([]string{""}, insertion...)
		}
		var out []string
		out = append(out, lines[:anchor]...)
		out = append(out, insertion...)
		out = append(out, lines[anchor:]...)
		return strings.Join(out, "\n")
	}

	// No section and no anchor: append at the end of the document.
	out := lines
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	out = append(out, "")
	out = append(out, digestLines...)
	return strings.Join(out, "\n")
}

func findHeading(lines []string, heading string) int {
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), heading) {
			return i
		}
	}
	return -1
}

func nextSectionStart(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			return i
		}
	}
	return len(lines)
}

func isListItem(chunk string) bool {
	return strings.HasPrefix(chunk, "- ") ||
		strings.HasPrefix(chunk, "* ") ||
		strings.HasPrefix(chunk, "1. ")
}

func containsSourceKeyword(chunk string) bool {
	lower := strings.ToLower(chunk)
	return strings.Contains(lower, "blog") ||
		strings.Contains(lower, "post") ||
		strings.Contains(lower, "article")
}

func headingLevel(chunk string) int {
	return len(chunk) - len(strings.TrimLeft(chunk, "#"))
}

func defaultReadme(formatted string) string {
	return `# Maffb - Multi-Agent Fleet for Blogs

Maffb is an automated blog content pipeline that collects, analyzes, and summarizes engineering blog posts from RSS feeds.

` + SummaryHeading + `

` + formatted + `

## Features

- **Automated RSS Feed Collection**: Monitors multiple engineering blogs for new content
- **AI-Powered Analysis**: Extracts key insights and trends from blog posts
- **Smart Summarization**: Creates concise, informative summaries with source attribution
- **Email Delivery**: Sends daily digests to subscribers
- **Fallback Mechanism**: Always provides content, even when no new posts are available
- **Daily README Updates**: Automatically updates README with latest summaries

## Automated Workflow

The pipeline is meant to run once per day from an external scheduler (for
example a GitHub Actions cron job) to:

1. **Collect** latest blog posts from RSS feeds
2. **Analyze** content for key insights and trends
3. **Summarize** posts with proper source attribution
4. **Email** summaries to subscribers
5. **Update** README with daily summaries

## Architecture

- **Feed Locator & Fetcher**: Intelligent RSS feed discovery and parsing
- **Post Aggregator**: Merges and orders posts across all configured blogs
- **Summarizer**: OpenAI-backed digest generation with a no-AI fallback
- **Emailer**: SendGrid integration for email delivery
- **README Updater**: Automatic README maintenance with daily summaries

## Development

### Prerequisites

- Go 1.23+

### Installation

` + "```bash" + `
# Clone the repository
git clone <your-repo-url>
cd maffb

# Build and run
go build ./...
go run .
` + "```" + `

## License

This project is licensed under the MIT License.
`
}
