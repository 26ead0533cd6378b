package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/samber/lo"

	"github.com/harshduche/maffb/internal/models"
)

type Summarizer struct {
	client openai.Client
}

type summariesResponse struct {
	Summaries []models.BlogSummary `json:"summaries"`
}

func NewSummarizer(apiKey string) *Summarizer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Summarizer{client: client}
}

// SummarizeBlogs asks the model for one concise summary per blog covered by
// the extraction result.
func (s *Summarizer) SummarizeBlogs(ctx context.Context, result *models.ExtractionResult) ([]models.BlogSummary, error) {
	if result == nil || len(result.Posts) == 0 {
		return nil, nil
	}

	prompt := buildSummaryPrompt(result)

	response, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String("You are an engineering blog analyst. Summarize blog posts into concise, insight-focused digests with source attribution."),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(4000),
	})

	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	content := response.Choices[0].Message.Content
	var parsed summariesResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}

	return parsed.Summaries, nil
}

func buildSummaryPrompt(result *models.ExtractionResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize these engineering blog posts about %q. For each blog, provide:\n", result.Topic))
	sb.WriteString("- title: the blog or leading post title\n")
	sb.WriteString("- url: link to the most relevant post\n")
	sb.WriteString("- summary: 2-4 sentences covering the key insights across the blog's posts\n")
	sb.WriteString("- source: the blog name\n\n")
	sb.WriteString("Respond with JSON format:\n")
	sb.WriteString(`{"summaries": [{"title": "title", "url": "https://...", "summary": "summary", "source": "blog name"}]}`)
	sb.WriteString("\n\nPosts to summarize:\n\n")

	for i, post := range result.Posts {
		sb.WriteString(fmt.Sprintf("Post %d:\n", i+1))
		sb.WriteString(fmt.Sprintf("Blog: %s\n", post.BlogName))
		sb.WriteString(fmt.Sprintf("Title: %s\n", post.Title))
		sb.WriteString(fmt.Sprintf("Link: %s\n", post.Link))
		sb.WriteString(fmt.Sprintf("Published: %s\n", post.Published))
		sb.WriteString(fmt.Sprintf("Summary: %s\n", post.Summary))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FallbackSummaries builds a digest straight from post titles and links, used
// when no model is configured or the model call fails. Blogs keep their
// newest-first order from the extraction result.
func FallbackSummaries(result *models.ExtractionResult) []models.BlogSummary {
	if result == nil || len(result.Posts) == 0 {
		return nil
	}

	grouped := lo.GroupBy(result.Posts, func(post models.Post) string {
		return post.BlogName
	})

	var summaries []models.BlogSummary
	seen := make(map[string]bool)
	for _, post := range result.Posts {
		if seen[post.BlogName] {
			continue
		}
		seen[post.BlogName] = true

		posts := grouped[post.BlogName]
		titles := lo.Map(posts, func(p models.Post, _ int) string {
			return p.Title
		})

		summaries = append(summaries, models.BlogSummary{
			Title:   post.Title,
			URL:     post.Link,
			Summary: fmt.Sprintf("Latest posts from %s: %s.", post.BlogName, strings.Join(titles, "; ")),
			Source:  post.BlogName,
		})
	}

	return summaries
}
