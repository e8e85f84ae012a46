// internal/infra/telegram/notifier.go
package telegram

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// TelebotNotifier implements the Notifier interface using the
// gopkg.in/telebot.v3 library. Every message goes to the single chat
// configured at startup.
type TelebotNotifier struct {
	bot     *telebot.Bot
	chatID  int64
	limiter *rate.Limiter
	logger  *logrus.Entry
}

func NewTelebotNotifier(b *telebot.Bot, chatID int64, logger *logrus.Entry) *TelebotNotifier {
	return &TelebotNotifier{
		bot:    b,
		chatID: chatID,
		// Telegram allows roughly one message per second to the same chat.
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		logger:  logger,
	}
}

// Notify sends the text to the configured chat and reports whether the send
// succeeded. Failures are logged here with full detail; the caller only sees
// the flag and must not treat a failed send as a fatal condition.
func (n *TelebotNotifier) Notify(ctx context.Context, text string) bool {
	if err := n.limiter.Wait(ctx); err != nil {
		n.logger.WithError(err).Error("Send cancelled while waiting for rate limiter")
		return false
	}

	recipient := &telebot.User{ID: n.chatID} // Single-tenant: one student, one direct chat
	if _, err := n.bot.Send(recipient, text); err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Failed to send Telegram message")
		return false
	}

	n.logger.WithField("text", text).Debug("Telegram message sent")
	return true
}
