package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySignupAdmitted(ctx context.Context, user *domain.User, event *domain.Event, role domain.Role) {
	n.send(ctx, user.TelegramChatID, admittedText(event, role))
}

func (n *TelegramNotifier) NotifySignupWithdrawn(ctx context.Context, user *domain.User, event *domain.Event) {
	n.send(ctx, user.TelegramChatID, withdrawnText(event))
}

func admittedText(event *domain.Event, role domain.Role) string {
	return fmt.Sprintf(
		"*You're signed up!*\n\n"+"Event: %s\n"+"Role: %s\n"+"When: %s\n"+"Where: %s",
		event.Title, role, when(event), event.Location,
	)
}

func withdrawnText(event *domain.Event) string {
	return fmt.Sprintf(
		"*Signup withdrawn*\n\n"+"Event: %s\n"+"When: %s",
		event.Title, when(event),
	)
}

// when renders the slot as "Mon 5 Oct 2026, 13:00-16:00", falling back to
// the stored strings when they do not parse.
func when(event *domain.Event) string {
	day := event.Date
	if start, err := event.StartsAt(); err == nil {
		day = start.Format("Mon 2 Jan 2006")
	}
	return fmt.Sprintf("%s, %s-%s", day, event.StartTime, event.EndTime)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
