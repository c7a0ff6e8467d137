// Package push delivers platform push notifications via Telegram.
//
// Push delivery is best-effort: when the bot token or chat ID is not
// configured the pusher is nil and every call is a no-op, and send failures
// are logged without surfacing to callers. The in-app notification list is
// unaffected either way.
package push

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram pushes notifications to a single chat. Nil-safe: a nil *Telegram
// silently drops every push.
type Telegram struct {
	api    telegramAPI
	chatID int64
	log    *slog.Logger
}

// NewTelegram creates a pusher for the given bot token and chat.
// Returns nil (push disabled) when token is empty or chatID is zero.
func NewTelegram(token string, chatID int64, log *slog.Logger) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

// Push sends a title/body pair to the configured chat. Fire-and-forget:
// errors are logged, never returned.
func (t *Telegram) Push(title, body string) {
	if t == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, title+"\n\n"+body)
	msg.DisableWebPagePreview = true
	if _, err := t.api.Send(msg); err != nil {
		t.log.Error("push send", "chat_id", t.chatID, "error", err)
	}
}
