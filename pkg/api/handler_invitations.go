package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// defaultInvitationTTL applies when the request does not set one.
const defaultInvitationTTL = 7 * 24 * time.Hour

// CreateInvitationRequest is the body of POST /api/v1/chats/:id/invitations.
type CreateInvitationRequest struct {
	TTLHours int `json:"ttl_hours"`
}

// RedeemInvitationRequest is the body of POST /api/v1/invitations/:token/redeem.
type RedeemInvitationRequest struct {
	UserID int64 `json:"user_id"`
}

// createInvitationHandler handles POST /api/v1/chats/:id/invitations.
func (s *Server) createInvitationHandler(c *gin.Context) {
	id, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ttl := defaultInvitationTTL
	if req.TTLHours > 0 {
		ttl = time.Duration(req.TTLHours) * time.Hour
	}

	if _, err := s.chats.Get(c.Request.Context(), id); err != nil {
		abortServiceError(c, err)
		return
	}
	invitation, err := s.invitations.Create(c.Request.Context(), id, ttl)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// listInvitationsHandler handles GET /api/v1/chats/:id/invitations.
func (s *Server) listInvitationsHandler(c *gin.Context) {
	id, ok := chatIDParam(c)
	if !ok {
		return
	}
	invitations, err := s.invitations.ListByChat(c.Request.Context(), id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// redeemInvitationHandler handles POST /api/v1/invitations/:token/redeem.
// The outcome is always 200 with a tagged result; malformed and unknown
// tokens are indistinguishable on purpose.
func (s *Server) redeemInvitationHandler(c *gin.Context) {
	var req RedeemInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.invitations.Redeem(c.Request.Context(), c.Param("token"), req.UserID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	resp := gin.H{"outcome": result.Outcome}
	if result.Invitation != nil {
		resp["chat_id"] = result.Invitation.ChatID
	}
	c.JSON(http.StatusOK, resp)
}

// revokeInvitationHandler handles POST /api/v1/invitations/:token/revoke.
func (s *Server) revokeInvitationHandler(c *gin.Context) {
	if err := s.invitations.Revoke(c.Request.Context(), c.Param("token")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
