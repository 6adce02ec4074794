package deliver

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RunSummary is what a finished run reports.
type RunSummary struct {
	Collected   int
	Kept        int
	CleanRows   int
	AuditRows   int
	QueriesUsed int
	QuotaCap    int
}

// Notifier posts run summaries to a Telegram chat. Notification failures
// are the caller's warnings, never run failures.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier connects the bot. Returns an error when the token is invalid.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// SendSummary posts one run's numbers.
func (n *Notifier) SendSummary(s RunSummary) error {
	text := fmt.Sprintf(
		"✅ Job run finished\n"+
			"📦 Collected: %d\n"+
			"🔍 Kept after filters: %d\n"+
			"📄 Clean rows: %d (audit %d)\n"+
			"ℹ️ Queries used today: %d/%d",
		s.Collected, s.Kept, s.CleanRows, s.AuditRows, s.QueriesUsed, s.QuotaCap)

	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.api.Send(msg)
	return err
}

// SendStatus posts a short informational line.
func (n *Notifier) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(n.chatID, "ℹ️ "+message)
	_, err := n.api.Send(msg)
	return err
}
