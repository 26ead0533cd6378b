package main

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/harshduche/maffb/internal/aggregator"
	"github.com/harshduche/maffb/internal/ai"
	"github.com/harshduche/maffb/internal/config"
	"github.com/harshduche/maffb/internal/emailer"
	"github.com/harshduche/maffb/internal/markdown"
	"github.com/harshduche/maffb/internal/models"
	"github.com/harshduche/maffb/internal/readme"
	"github.com/harshduche/maffb/internal/telegram"
)

func main() {
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting Maffb daily blog digest...")

	sources, err := aggregator.LoadSources(filepath.Join(cfg.KnowledgeDir, "blog_sources.json"))
	if err != nil {
		log.Fatalf("Failed to load blog sources: %v", err)
	}

	date := time.Now().Format("2006-01-02")
	updater := readme.NewUpdater(cfg.ReadmePath)

	result, err := aggregator.New().Aggregate(ctx, sources, cfg.Topic, cfg.MaxPosts)
	if errors.Is(err, aggregator.ErrNoPosts) {
		if !cfg.Fallback {
			log.Warn("No posts found from any RSS feeds, skipping digest")
			return
		}
		log.Warn("No posts found from any RSS feeds, updating README with fallback content")
		fallback := "No new posts matched the topic today. Check the source blogs directly for the latest content."
		if err := updater.Upsert(fallback, readme.DefaultTitle, date); err != nil {
			log.Errorf("Failed to update README: %v", err)
		}
		return
	}
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}

	log.WithFields(log.Fields{
		"posts": result.TotalPosts,
		"topic": result.Topic,
	}).Info("Aggregated posts from RSS feeds")

	summaries := summarize(ctx, cfg, result)

	digest := digestContent(summaries)
	formatted := markdown.Format(digest, markdown.ModeSummary, "Daily Blog Summaries", date)
	if err := readme.WriteSummaryArtifact(cfg.SummaryFile, formatted); err != nil {
		log.Warnf("Failed to write summary artifact: %v", err)
	}

	if err := updater.Upsert(digest, readme.DefaultTitle, date); err != nil {
		log.Errorf("Failed to update README: %v", err)
	}

	mailer := emailer.New(cfg.SendGridAPIKey, emailRegion(cfg), cfg.FromEmail, cfg.Subject)
	sendResult := mailer.SendDigest(ctx, summaries, filepath.Join(cfg.KnowledgeDir, "emailer_list.json"), cfg.TemplatePath)
	log.Info(sendResult)

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Warnf("Telegram notifier unavailable: %v", err)
		} else {
			notifier.NotifyDigest(summaries, date)
		}
	}

	log.Info("Maffb run completed")
}

func summarize(ctx context.Context, cfg *config.Config, result *models.ExtractionResult) []models.BlogSummary {
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, using fallback summaries")
		return ai.FallbackSummaries(result)
	}

	summaries, err := ai.NewSummarizer(cfg.OpenAIAPIKey).SummarizeBlogs(ctx, result)
	if err != nil {
		log.Warnf("AI summarization failed, using fallback summaries: %v", err)
		return ai.FallbackSummaries(result)
	}
	return summaries
}

func emailRegion(cfg *config.Config) emailer.Region {
	if cfg.EUResidency {
		return emailer.RegionEU
	}
	return emailer.RegionUS
}

// digestContent lays the per-blog summaries out as raw markdown for the
// formatter and the README updater.
func digestContent(summaries []models.BlogSummary) string {
	var b strings.Builder
	for _, summary := range summaries {
		b.WriteString("## " + summary.Title + "\n\n")
		b.WriteString(summary.Summary + "\n\n")
		if summary.URL != "" {
			b.WriteString("Read the full post: " + summary.URL + "\n\n")
		}
	}
	return strings.TrimSpace(b.String())
}
