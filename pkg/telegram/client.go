// Package telegram is the bot transport: sending, update normalization,
// and callback grammar. Everything above this package works with
// models.ChatEvent and the Sender interface, never with raw bot API types.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// ErrBlocked indicates the recipient blocked the bot or the chat is gone.
// Deliveries failing this way must not be retried.
var ErrBlocked = errors.New("recipient blocked the bot")

// Sender is the outbound surface used by delivery and the ingestion
// pipeline. *BotClient implements it; tests substitute a fake.
type Sender interface {
	// SendMessage sends HTML-formatted text, optionally with an inline
	// keyboard, and returns the sent message id.
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (int64, error)

	// EditMessageText replaces the text (and keyboard) of a sent message.
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error

	// AnswerCallback acknowledges a callback query with optional toast text.
	AnswerCallback(ctx context.Context, callbackID, text string) error

	// ExportChatInviteLink creates a fresh primary invite link for a chat.
	ExportChatInviteLink(ctx context.Context, chatID int64) (string, error)
}

// BotClient wraps the Telegram Bot API with a global outbound rate limit
// shared by all callers, so alert fan-out cannot trip the platform's
// flood control.
type BotClient struct {
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
}

// NewBotClient creates a bot client. messagesPerSecond caps outbound sends
// globally (Telegram allows roughly 30 messages per second per bot).
func NewBotClient(token string, messagesPerSecond int) (*BotClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	slog.Info("Telegram bot authorized", "username", bot.Self.UserName)

	return &BotClient{
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(messagesPerSecond), messagesPerSecond),
	}, nil
}

// BotUsername returns the authorized bot's username.
func (c *BotClient) BotUsername() string {
	return c.bot.Self.UserName
}

// BotID returns the authorized bot's user id.
func (c *BotClient) BotID() int64 {
	return c.bot.Self.ID
}

// SendMessage implements Sender.
func (c *BotClient) SendMessage(ctx context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter wait: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	sent, err := c.bot.Send(msg)
	if err != nil {
		return 0, classifySendError(chatID, err)
	}
	return int64(sent.MessageID), nil
}

// EditMessageText implements Sender.
func (c *BotClient) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	edit := tgbotapi.NewEditMessageText(chatID, int(messageID), text)
	edit.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		edit.ReplyMarkup = keyboard
	}

	if _, err := c.bot.Send(edit); err != nil {
		return classifySendError(chatID, err)
	}
	return nil
}

// AnswerCallback implements Sender.
func (c *BotClient) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := c.bot.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

// ExportChatInviteLink implements Sender.
func (c *BotClient) ExportChatInviteLink(ctx context.Context, chatID int64) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	cfg := tgbotapi.ChatInviteLinkConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	}
	link, err := c.bot.GetInviteLink(cfg)
	if err != nil {
		return "", classifySendError(chatID, err)
	}
	return link, nil
}

// classifySendError maps API failures onto sentinel errors. A 403 means the
// user blocked the bot or it was kicked from the chat; retrying is useless.
func classifySendError(chatID int64, err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 403 ||
			strings.Contains(apiErr.Message, "bot was blocked") ||
			strings.Contains(apiErr.Message, "chat not found") ||
			strings.Contains(apiErr.Message, "user is deactivated") {
			return fmt.Errorf("chat %d: %s: %w", chatID, apiErr.Message, ErrBlocked)
		}
	}
	return fmt.Errorf("failed to send to chat %d: %w", chatID, err)
}
