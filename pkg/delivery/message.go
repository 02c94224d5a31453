package delivery

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/pkg/telegram"
)

// previewLimit caps how much of the client's message an alert quotes.
const previewLimit = 200

// Preview truncates text to the preview limit on a rune boundary.
func Preview(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= previewLimit {
		return string(runes)
	}
	return string(runes[:previewLimit]) + "…"
}

// ChatLink returns a clickable reference to the chat: the stored invite
// URL when present, a deep link for supergroups, empty otherwise.
func ChatLink(c *ent.Chat) string {
	if c.InviteURL != nil && *c.InviteURL != "" {
		return *c.InviteURL
	}
	if c.ChatType == chat.ChatTypeSupergroup {
		// Supergroup ids are -100 followed by the internal id.
		internal := strings.TrimPrefix(strconv.FormatInt(c.ID, 10), "-100")
		return "https://t.me/c/" + internal
	}
	return ""
}

// ComposeAlert renders the Russian alert text for one recipient.
func ComposeAlert(alert *ent.SLAAlert, req *ent.ClientRequest, c *ent.Chat) string {
	var b strings.Builder

	switch {
	case alert.AlertType == slaalert.AlertTypeWarning:
		b.WriteString("⚠️ <b>Приближается нарушение SLA</b>\n\n")
	case alert.EscalationLevel <= 1:
		b.WriteString("🔴 <b>Нарушение SLA</b>\n\n")
	default:
		fmt.Fprintf(&b, "🚨 <b>Эскалация SLA — уровень %d</b>\n\n", alert.EscalationLevel)
	}

	fmt.Fprintf(&b, "Чат: <b>%s</b>\n", html.EscapeString(c.Title))
	if req.ClientUsername != "" {
		fmt.Fprintf(&b, "Клиент: @%s\n", html.EscapeString(req.ClientUsername))
	}
	fmt.Fprintf(&b, "Без ответа: <b>%d мин</b>\n\n", alert.MinutesElapsed)
	fmt.Fprintf(&b, "Сообщение:\n<i>%s</i>", html.EscapeString(Preview(req.MessageText)))

	if link := ChatLink(c); link != "" {
		fmt.Fprintf(&b, "\n\n<a href=\"%s\">Перейти в чат</a>", link)
	}
	return b.String()
}

// AlertKeyboard builds the action buttons attached to every alert.
func AlertKeyboard(alertID string) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 Напомнить бухгалтеру", telegram.NotifyCallbackData(alertID)),
			tgbotapi.NewInlineKeyboardButtonData("✅ Решено", telegram.ResolveCallbackData(alertID)),
		),
	)
	return &keyboard
}

// ComposeBreachNotice renders the optional in-chat breach notice.
func ComposeBreachNotice() string {
	return "⏳ Ваш запрос передан старшему специалисту, ответим в ближайшее время."
}

// ComposeReminder renders the text sent to accountants when a manager
// presses the reminder button.
func ComposeReminder(req *ent.ClientRequest, c *ent.Chat) string {
	var b strings.Builder
	b.WriteString("🔔 <b>Напоминание: клиент ждёт ответа</b>\n\n")
	fmt.Fprintf(&b, "Чат: <b>%s</b>\n\n", html.EscapeString(c.Title))
	fmt.Fprintf(&b, "Сообщение:\n<i>%s</i>", html.EscapeString(Preview(req.MessageText)))
	if link := ChatLink(c); link != "" {
		fmt.Fprintf(&b, "\n\n<a href=\"%s\">Перейти в чат</a>", link)
	}
	return b.String()
}

// ComposeSurvey renders the satisfaction survey sent to the client chat.
func ComposeSurvey() string {
	return "Пожалуйста, оцените качество нашего ответа от 1 до 5:"
}

// SurveyKeyboard builds the rating row for a survey delivery.
func SurveyKeyboard(deliveryID string) *tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(rating), telegram.SurveyCallbackData(deliveryID, rating)))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}

// ComposeLowRatingAlert renders the manager notification for a poor survey
// rating.
func ComposeLowRatingAlert(feedback *ent.FeedbackResponse, c *ent.Chat) string {
	var b strings.Builder
	b.WriteString("📉 <b>Низкая оценка от клиента</b>\n\n")
	fmt.Fprintf(&b, "Чат: <b>%s</b>\n", html.EscapeString(c.Title))
	fmt.Fprintf(&b, "Оценка: <b>%d/5</b>\n", feedback.Rating)
	if feedback.Comment != nil && *feedback.Comment != "" {
		fmt.Fprintf(&b, "\nКомментарий:\n<i>%s</i>", html.EscapeString(Preview(*feedback.Comment)))
	}
	if link := ChatLink(c); link != "" {
		fmt.Fprintf(&b, "\n\n<a href=\"%s\">Перейти в чат</a>", link)
	}
	return b.String()
}

// LowRatingKeyboard builds the inspect button for a low-rating alert.
func LowRatingKeyboard(feedbackID string) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Подробнее", telegram.ViewFeedbackCallbackData(feedbackID)),
		),
	)
	return &keyboard
}

// ComposeFeedbackDetails renders the expanded view behind the inspect
// button.
func ComposeFeedbackDetails(feedback *ent.FeedbackResponse, c *ent.Chat) string {
	var b strings.Builder
	b.WriteString("📋 <b>Отзыв клиента</b>\n\n")
	fmt.Fprintf(&b, "Чат: <b>%s</b>\n", html.EscapeString(c.Title))
	fmt.Fprintf(&b, "Оценка: <b>%d/5</b>\n", feedback.Rating)
	fmt.Fprintf(&b, "Дата: %s\n", feedback.SubmittedAt.Format("02.01.2006 15:04"))
	if feedback.Comment != nil && *feedback.Comment != "" {
		fmt.Fprintf(&b, "\nКомментарий:\n<i>%s</i>", html.EscapeString(*feedback.Comment))
	}
	return b.String()
}
