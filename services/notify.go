package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const telegramClientTimeout = 10 * time.Second

// TelegramNotifier sends event summaries to the admin chat (MESSAGE_TOKEN bot).
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	return newTelegramNotifierWithEndpoint(token, chatID, tgbotapi.APIEndpoint, &http.Client{Timeout: telegramClientTimeout})
}

func newTelegramNotifierWithEndpoint(token string, chatID int64, endpoint string, client tgbotapi.HTTPClient) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

// Publish returns when the message is sent or ctx is done, whichever comes first.
// The Bot API client has no context support, so a send abandoned on ctx runs
// out on its own, bounded by the client timeout.
func (n *TelegramNotifier) Publish(ctx context.Context, ev Event) error {
	if n.chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(n.chatID, ev.Summary())

	done := make(chan error, 1)
	go func() {
		_, err := n.api.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("telegram send: %w", ctx.Err())
	}
}
