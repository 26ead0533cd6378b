package ai_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshduche/maffb/internal/ai"
	"github.com/harshduche/maffb/internal/models"
)

func TestFallbackSummaries(t *testing.T) {
	result := &models.ExtractionResult{
		Topic:          "engineering",
		TotalPosts:     3,
		ExtractionDate: time.Now(),
		Posts: []models.Post{
			{Title: "Newest from A", Link: "https://a.example.com/1", BlogName: "Blog A"},
			{Title: "Only from B", Link: "https://b.example.com/1", BlogName: "Blog B"},
			{Title: "Older from A", Link: "https://a.example.com/2", BlogName: "Blog A"},
		},
	}

	summaries := ai.FallbackSummaries(result)
	require.Len(t, summaries, 2)

	// Blogs keep their newest-first order from the extraction result.
	assert.Equal(t, "Blog A", summaries[0].Source)
	assert.Equal(t, "Newest from A", summaries[0].Title)
	assert.Equal(t, "https://a.example.com/1", summaries[0].URL)
	assert.Contains(t, summaries[0].Summary, "Newest from A")
	assert.Contains(t, summaries[0].Summary, "Older from A")

	assert.Equal(t, "Blog B", summaries[1].Source)
	assert.Contains(t, summaries[1].Summary, "Only from B")
}

func TestFallbackSummariesEmpty(t *testing.T) {
	assert.Nil(t, ai.FallbackSummaries(nil))
	assert.Nil(t, ai.FallbackSummaries(&models.ExtractionResult{}))
}
