// Package markdown reshapes raw summary text into presentable markdown. It
// is a best-effort pretty-printer, not a parser: chunks are classified by
// their leading characters and passed through mostly untouched.
package markdown

import (
	"strings"
	"time"
	"unicode"
)

type Mode string

const (
	ModeSummary Mode = "summary"
	ModeReadme  Mode = "readme"
	ModeGeneral Mode = "general"
)

var sourceKeywords = []string{"blog", "post", "article"}

func Format(content string, mode Mode, title, date string) string {
	switch mode {
	case ModeSummary:
		return formatSummary(content, title, date)
	case ModeReadme:
		return formatReadme(content, title, date)
	default:
		return formatGeneral(content, title, date)
	}
}

func formatSummary(content, title, date string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	if date != "" {
		b.WriteString("**Date:** " + date + "\n\n")
	}

	for _, section := range strings.Split(content, "\n\n") {
		chunk := strings.TrimSpace(section)
		switch {
		case chunk == "":
		case strings.HasPrefix(chunk, "##"):
			b.WriteString(chunk + "\n\n")
		case isListItem(chunk):
			b.WriteString(chunk + "\n")
		case strings.Contains(chunk, "http") && containsAny(strings.ToLower(chunk), sourceKeywords):
			b.WriteString("🔗 **Source:** " + chunk + "\n\n")
		default:
			b.WriteString(chunk + "\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}

func formatReadme(content, title, date string) string {
	today := date
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}

	var b strings.Builder
	b.WriteString("## 📅 Daily Blog Summary - " + today + "\n\n")
	if title != "" {
		b.WriteString("### " + title + "\n\n")
	}

	for _, line := range strings.Split(content, "\n") {
		chunk := strings.TrimSpace(line)
		switch {
		case chunk == "":
		case strings.HasPrefix(chunk, "#"):
			// Relevel headings so they nest under the summary section.
			text := strings.TrimSpace(strings.TrimLeft(chunk, "#"))
			switch headingLevel(chunk) {
			case 1:
				b.WriteString("### " + text + "\n\n")
			case 2:
				b.WriteString("#### " + text + "\n\n")
			default:
				b.WriteString("##### " + text + "\n\n")
			}
		case isListItem(chunk):
			b.WriteString(chunk + "\n")
		case strings.Contains(chunk, "http"):
			b.WriteString("🔗 **Source:** " + chunk + "\n\n")
		case strings.Contains(chunk, "**") || strings.Contains(chunk, "__"):
			b.WriteString(chunk + "\n\n")
		default:
			b.WriteString(chunk + "\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}

func formatGeneral(content, title, date string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	if date != "" {
		b.WriteString("**Date:** " + date + "\n\n")
	}

	for _, line := range strings.Split(content, "\n") {
		chunk := strings.TrimSpace(line)
		switch {
		case chunk == "":
		case isAllUpper(chunk) && len(chunk) < 100:
			b.WriteString("## " + chunk + "\n\n")
		case isListItem(chunk):
			b.WriteString(chunk + "\n")
		case strings.Contains(chunk, "http"):
			b.WriteString("🔗 " + chunk + "\n\n")
		default:
			b.WriteString(chunk + "\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}

func isListItem(chunk string) bool {
	return strings.HasPrefix(chunk, "- ") ||
		strings.HasPrefix(chunk, "* ") ||
		strings.HasPrefix(chunk, "1. ")
}

func containsAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

func headingLevel(chunk string) int {
	return len(chunk) - len(strings.TrimLeft(chunk, "#"))
}

// isAllUpper reports whether the chunk has at least one letter and no
// lowercase letters, the heuristic for shouty standalone headings.
func isAllUpper(chunk string) bool {
	hasLetter := false
	for _, r := range chunk {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
