package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/teambuh/slamon/pkg/telegram"
)

// webhookHandler handles POST /webhook/telegram/:token. The token in the
// path authenticates the caller: only Telegram knows the bot token.
func (s *Server) webhookHandler(c *gin.Context) {
	if subtle.ConstantTimeCompare([]byte(c.Param("token")), []byte(s.botToken)) != 1 {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
		return
	}

	event := telegram.Normalize(update, s.botID)
	if event == nil {
		c.Status(http.StatusOK)
		return
	}

	if err := s.handler.HandleEvent(c.Request.Context(), event); err != nil {
		// Telegram retries non-2xx responses; a poisoned update must not
		// be redelivered forever, so failures are logged and acknowledged.
		s.logger.Error("Failed to handle webhook event",
			"event_type", event.Type,
			"chat_id", event.Chat.ID,
			"error", err)
	}
	c.Status(http.StatusOK)
}
