package config

import (
	"os"
	"strconv"
)

type Config struct {
	OpenAIAPIKey   string
	SendGridAPIKey string
	EUResidency    bool
	FromEmail      string
	Subject        string
	Topic          string
	MaxPosts       int
	Fallback       bool
	TelegramToken  string
	TelegramChatID int64
	KnowledgeDir   string
	TemplatePath   string
	ReadmePath     string
	SummaryFile    string
}

func Load() *Config {
	return &Config{
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EUResidency:    getEnvAsBool("SENDGRID_EU_RESIDENCY", false),
		FromEmail:      getEnv("FROM_EMAIL", "blogs@harshduche.com"),
		Subject:        getEnv("SUBJECT", "Your Daily Blog Summaries - Maffb"),
		Topic:          getEnv("TOPIC", "engineering"),
		MaxPosts:       getEnvAsInt("MAX_POSTS", 10),
		Fallback:       getEnvAsBool("FALLBACK_CONTENT", true),
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		KnowledgeDir:   getEnv("KNOWLEDGE_DIR", "knowledge"),
		TemplatePath:   getEnv("TEMPLATE_PATH", "templates/email_template.html"),
		ReadmePath:     getEnv("README_PATH", "README.md"),
		SummaryFile:    getEnv("SUMMARY_FILE", "blog_summaries.md"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "TRUE", "True", "YES":
		return true
	case "0", "false", "no", "FALSE", "False", "NO":
		return false
	}
	return defaultValue
}
