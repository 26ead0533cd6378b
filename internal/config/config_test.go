package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harshduche/maffb/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "blogs@harshduche.com", cfg.FromEmail)
	assert.Equal(t, "Your Daily Blog Summaries - Maffb", cfg.Subject)
	assert.Equal(t, "engineering", cfg.Topic)
	assert.Equal(t, 10, cfg.MaxPosts)
	assert.True(t, cfg.Fallback)
	assert.False(t, cfg.EUResidency)
	assert.Equal(t, "knowledge", cfg.KnowledgeDir)
	assert.Equal(t, "README.md", cfg.ReadmePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOPIC", "distributed systems")
	t.Setenv("MAX_POSTS", "3")
	t.Setenv("SENDGRID_EU_RESIDENCY", "true")
	t.Setenv("FALLBACK_CONTENT", "false")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001234567890")

	cfg := config.Load()

	assert.Equal(t, "distributed systems", cfg.Topic)
	assert.Equal(t, 3, cfg.MaxPosts)
	assert.True(t, cfg.EUResidency)
	assert.False(t, cfg.Fallback)
	assert.Equal(t, int64(-1001234567890), cfg.TelegramChatID)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("MAX_POSTS", "lots")

	cfg := config.Load()
	assert.Equal(t, 10, cfg.MaxPosts)
}
