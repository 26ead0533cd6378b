package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/harshduche/maffb/internal/models"
)

// Notifier pushes a short digest message to a Telegram chat as a secondary
// delivery channel next to email.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &Notifier{api: api, chatID: chatID}, nil
}

// NotifyDigest sends one message with the day's blog summaries. Send errors
// are logged, never fatal to the run.
func (n *Notifier) NotifyDigest(summaries []models.BlogSummary, date string) {
	msg := tgbotapi.NewMessage(n.chatID, FormatDigestMessage(summaries, date))
	msg.ParseMode = "HTML"
	msg.DisableWebPagePreview = true

	if _, err := n.api.Send(msg); err != nil {
		log.Warnf("Failed to send telegram message: %v", err)
		return
	}

	log.Info("Telegram digest notification sent")
}

func FormatDigestMessage(summaries []models.BlogSummary, date string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📰 <b>Daily Blog Digest - %s</b>\n\n", date))

	for _, summary := range summaries {
		b.WriteString(fmt.Sprintf("<b>%s</b> (%s)\n", summary.Title, summary.Source))
		b.WriteString(summary.Summary + "\n")
		if summary.URL != "" {
			b.WriteString(summary.URL + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
