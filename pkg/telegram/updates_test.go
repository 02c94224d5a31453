package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/pkg/models"
)

const testBotID int64 = 999

func TestNormalize_Message(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 42,
			Date:      1700000000,
			Chat:      &tgbotapi.Chat{ID: -100123, Type: "supergroup", Title: "ООО Ромашка"},
			From:      &tgbotapi.User{ID: 555, UserName: "ivanov", FirstName: "Иван"},
			Text:      "Когда будет отчет?",
		},
	}

	event := Normalize(update, testBotID)
	require.NotNil(t, event)
	assert.Equal(t, models.EventMessage, event.Type)
	assert.Equal(t, int64(-100123), event.Chat.ID)
	assert.Equal(t, "supergroup", event.Chat.Type)
	assert.Equal(t, int64(42), event.MessageID)
	assert.Equal(t, int64(555), event.From.ID)
	assert.Equal(t, "ivanov", event.From.Username)
	assert.Equal(t, "Когда будет отчет?", event.Text)
}

func TestNormalize_Reply(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID:      50,
			Chat:           &tgbotapi.Chat{ID: -100123, Type: "group"},
			From:           &tgbotapi.User{ID: 777, UserName: "buh"},
			Text:           "Отчет будет завтра",
			ReplyToMessage: &tgbotapi.Message{MessageID: 42},
		},
	}

	event := Normalize(update, testBotID)
	require.NotNil(t, event)
	assert.Equal(t, int64(42), event.ReplyToMessageID)
	assert.Equal(t, int64(42), event.ThreadID)
}

func TestNormalize_NonReplyHasNoThread(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 51,
			Chat:      &tgbotapi.Chat{ID: -100123, Type: "group"},
			From:      &tgbotapi.User{ID: 555},
			Text:      "Добрый день",
		},
	}

	event := Normalize(update, testBotID)
	require.NotNil(t, event)
	assert.Zero(t, event.ReplyToMessageID)
	assert.Zero(t, event.ThreadID)
}

func TestNormalize_Callback(t *testing.T) {
	update := tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: 777, UserName: "manager"},
			Data: "resolve_alert-5",
			Message: &tgbotapi.Message{
				MessageID: 60,
				Chat:      &tgbotapi.Chat{ID: 777, Type: "private"},
			},
		},
	}

	event := Normalize(update, testBotID)
	require.NotNil(t, event)
	assert.Equal(t, models.EventCallback, event.Type)
	require.NotNil(t, event.Callback)
	assert.Equal(t, "cb-1", event.Callback.ID)
	assert.Equal(t, "resolve_alert-5", event.Callback.Data)
	assert.Equal(t, int64(60), event.Callback.MessageID)
}

func TestNormalize_Migration(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID:       70,
			Chat:            &tgbotapi.Chat{ID: -123, Type: "group", Title: "Ромашка"},
			MigrateToChatID: -100456,
		},
	}

	event := Normalize(update, testBotID)
	require.NotNil(t, event)
	assert.Equal(t, models.EventChatMigrated, event.Type)
	assert.Equal(t, int64(-123), event.MigratedFromID)
	assert.Equal(t, int64(-100456), event.MigratedToID)
}

func TestNormalize_BotMembership(t *testing.T) {
	added := tgbotapi.Update{
		MyChatMember: &tgbotapi.ChatMemberUpdated{
			Chat: tgbotapi.Chat{ID: -100123, Type: "supergroup", Title: "Ромашка"},
			From: tgbotapi.User{ID: 555},
			NewChatMember: tgbotapi.ChatMember{
				Status: "member",
				User:   &tgbotapi.User{ID: testBotID, IsBot: true},
			},
		},
	}
	event := Normalize(added, testBotID)
	require.NotNil(t, event)
	assert.Equal(t, models.EventBotAdded, event.Type)

	removed := added
	removed.MyChatMember.NewChatMember.Status = "kicked"
	event = Normalize(removed, testBotID)
	require.NotNil(t, event)
	assert.Equal(t, models.EventBotRemoved, event.Type)
}

func TestNormalize_OtherUserMembershipIgnored(t *testing.T) {
	update := tgbotapi.Update{
		MyChatMember: &tgbotapi.ChatMemberUpdated{
			Chat: tgbotapi.Chat{ID: -100123, Type: "supergroup"},
			NewChatMember: tgbotapi.ChatMember{
				Status: "member",
				User:   &tgbotapi.User{ID: 1},
			},
		},
	}
	assert.Nil(t, Normalize(update, testBotID))
}

func TestNormalize_IrrelevantUpdate(t *testing.T) {
	assert.Nil(t, Normalize(tgbotapi.Update{}, testBotID))
}
