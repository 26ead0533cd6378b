package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harshduche/maffb/internal/markdown"
)

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		title    string
		date     string
		expected string
	}{
		{
			name:     "heading and paragraph",
			content:  "## Title\n\nSome text",
			expected: "## Title\n\nSome text",
		},
		{
			name:     "title and date header",
			content:  "Body text",
			title:    "Digest",
			date:     "2024-01-01",
			expected: "# Digest\n\n**Date:** 2024-01-01\n\nBody text",
		},
		{
			name:     "source link callout",
			content:  "Read the full blog at https://example.com/post",
			expected: "🔗 **Source:** Read the full blog at https://example.com/post",
		},
		{
			name:     "plain link without keyword stays a paragraph",
			content:  "See https://example.com for details",
			expected: "See https://example.com for details",
		},
		{
			name:     "list items stay adjacent",
			content:  "- first\n- second\n\n- third",
			expected: "- first\n- second\n- third",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := markdown.Format(tt.content, markdown.ModeSummary, tt.title, tt.date)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatReadme(t *testing.T) {
	result := markdown.Format("# Big Heading\nSome paragraph\n**Key insight** here", markdown.ModeReadme, "Digest", "2024-01-01")

	assert.Contains(t, result, "## 📅 Daily Blog Summary - 2024-01-01")
	assert.Contains(t, result, "### Digest")
	// Headings are releveled to nest under the section.
	assert.Contains(t, result, "### Big Heading")
	assert.NotContains(t, result, "\n# Big Heading")
	assert.Contains(t, result, "**Key insight** here")
}

func TestFormatReadmeSourceCallout(t *testing.T) {
	result := markdown.Format("https://example.com/anything", markdown.ModeReadme, "", "2024-01-01")
	assert.Contains(t, result, "🔗 **Source:** https://example.com/anything")
}

func TestFormatGeneral(t *testing.T) {
	result := markdown.Format("IMPORTANT NOTICE\nregular text\nhttps://example.com", markdown.ModeGeneral, "", "")

	assert.Contains(t, result, "## IMPORTANT NOTICE")
	assert.Contains(t, result, "regular text")
	assert.Contains(t, result, "🔗 https://example.com")
}

func TestFormatTrimsWhitespace(t *testing.T) {
	result := markdown.Format("\n\nSome text\n\n", markdown.ModeSummary, "", "")
	assert.Equal(t, "Some text", result)
}
