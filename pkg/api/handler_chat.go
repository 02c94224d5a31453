package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/pkg/services"
)

// UpdateChatRequest is the body of PATCH /api/v1/chats/:id. Absent fields
// stay unchanged.
type UpdateChatRequest struct {
	SLAEnabled           *bool    `json:"sla_enabled"`
	SLAThresholdMinutes  *int     `json:"sla_threshold_minutes"`
	MonitoringEnabled    *bool    `json:"monitoring_enabled"`
	Is24x7               *bool    `json:"is_24x7"`
	ManagerIDs           []string `json:"manager_ids"`
	AccountantIDs        []string `json:"accountant_ids"`
	NotifyInChatOnBreach *bool    `json:"notify_in_chat_on_breach"`
	ClientTier           *string  `json:"client_tier"`
	InviteURL            *string  `json:"invite_url"`
}

func chatIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return 0, false
	}
	return id, true
}

// listChatsHandler handles GET /api/v1/chats.
func (s *Server) listChatsHandler(c *gin.Context) {
	chats, err := s.chats.List(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

// getChatHandler handles GET /api/v1/chats/:id.
func (s *Server) getChatHandler(c *gin.Context) {
	id, ok := chatIDParam(c)
	if !ok {
		return
	}
	chat, err := s.chats.Get(c.Request.Context(), id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// updateChatHandler handles PATCH /api/v1/chats/:id.
func (s *Server) updateChatHandler(c *gin.Context) {
	id, ok := chatIDParam(c)
	if !ok {
		return
	}
	var req UpdateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := s.chats.Update(c.Request.Context(), id, services.UpdateChatInput{
		SLAEnabled:           req.SLAEnabled,
		SLAThresholdMinutes:  req.SLAThresholdMinutes,
		MonitoringEnabled:    req.MonitoringEnabled,
		Is24x7:               req.Is24x7,
		ManagerIDs:           req.ManagerIDs,
		AccountantIDs:        req.AccountantIDs,
		NotifyInChatOnBreach: req.NotifyInChatOnBreach,
		ClientTier:           req.ClientTier,
		InviteURL:            req.InviteURL,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// listChatRequestsHandler handles GET /api/v1/chats/:id/requests with an
// optional status filter.
func (s *Server) listChatRequestsHandler(c *gin.Context) {
	id, ok := chatIDParam(c)
	if !ok {
		return
	}

	var statuses []clientrequest.Status
	if raw := c.Query("status"); raw != "" {
		status := clientrequest.Status(raw)
		if err := clientrequest.StatusValidator(status); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		statuses = append(statuses, status)
	}

	requests, err := s.requests.ListByChat(c.Request.Context(), id, statuses...)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
