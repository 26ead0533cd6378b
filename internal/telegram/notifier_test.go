package telegram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harshduche/maffb/internal/models"
	"github.com/harshduche/maffb/internal/telegram"
)

func TestFormatDigestMessage(t *testing.T) {
	summaries := []models.BlogSummary{
		{Title: "Scaling Search", URL: "https://example.com/search", Summary: "How search scaled.", Source: "Blog A"},
		{Title: "No Link Post", Summary: "Summary without a link.", Source: "Blog B"},
	}

	message := telegram.FormatDigestMessage(summaries, "2024-01-01")

	assert.Contains(t, message, "Daily Blog Digest - 2024-01-01")
	assert.Contains(t, message, "<b>Scaling Search</b> (Blog A)")
	assert.Contains(t, message, "How search scaled.")
	assert.Contains(t, message, "https://example.com/search")
	assert.Contains(t, message, "<b>No Link Post</b> (Blog B)")
}
