package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teambuh/slamon/pkg/services"
)

// UpdateSettingsRequest is the body of PUT /api/v1/settings. Absent fields
// stay unchanged.
type UpdateSettingsRequest struct {
	DefaultSLAThresholdMinutes *int     `json:"default_sla_threshold_minutes"`
	WarningOffsetMinutes       *int     `json:"warning_offset_minutes"`
	EscalationIntervalMinutes  *int     `json:"escalation_interval_minutes"`
	MaxEscalationLevel         *int     `json:"max_escalation_level"`
	GlobalManagerIDs           []string `json:"global_manager_ids"`
	LowRatingThreshold         *int     `json:"low_rating_threshold"`
	SLAConcurrency             *int     `json:"sla_concurrency"`
	SLARateLimitMax            *int     `json:"sla_rate_limit_max"`
	SLARateLimitWindowMs       *int     `json:"sla_rate_limit_window_ms"`
	ReconcileIntervalMinutes   *int     `json:"reconcile_interval_minutes"`
}

// getSettingsHandler handles GET /api/v1/settings.
func (s *Server) getSettingsHandler(c *gin.Context) {
	settings, err := s.settings.Get(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettingsHandler handles PUT /api/v1/settings.
func (s *Server) updateSettingsHandler(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := s.settings.Update(c.Request.Context(), services.UpdateSettingsInput{
		DefaultSLAThresholdMinutes: req.DefaultSLAThresholdMinutes,
		WarningOffsetMinutes:       req.WarningOffsetMinutes,
		EscalationIntervalMinutes:  req.EscalationIntervalMinutes,
		MaxEscalationLevel:         req.MaxEscalationLevel,
		GlobalManagerIDs:           req.GlobalManagerIDs,
		LowRatingThreshold:         req.LowRatingThreshold,
		SLAConcurrency:             req.SLAConcurrency,
		SLARateLimitMax:            req.SLARateLimitMax,
		SLARateLimitWindowMs:       req.SLARateLimitWindowMs,
		ReconcileIntervalMinutes:   req.ReconcileIntervalMinutes,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
