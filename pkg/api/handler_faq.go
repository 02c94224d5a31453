package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teambuh/slamon/pkg/services"
)

// CreateFAQRequest is the body of POST /api/v1/faq.
type CreateFAQRequest struct {
	Question string   `json:"question"`
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
}

// UpdateFAQRequest is the body of PUT /api/v1/faq/:id. Absent fields stay
// unchanged.
type UpdateFAQRequest struct {
	Question *string  `json:"question"`
	Keywords []string `json:"keywords"`
	Answer   *string  `json:"answer"`
	IsActive *bool    `json:"is_active"`
}

// listFAQHandler handles GET /api/v1/faq.
func (s *Server) listFAQHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	items, err := s.faqs.List(c.Request.Context(), activeOnly)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// createFAQHandler handles POST /api/v1/faq.
func (s *Server) createFAQHandler(c *gin.Context) {
	var req CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.faqs.Create(c.Request.Context(), services.CreateFAQInput{
		Question: req.Question,
		Keywords: req.Keywords,
		Answer:   req.Answer,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	s.invalidateMatcher()
	c.JSON(http.StatusCreated, item)
}

// updateFAQHandler handles PUT /api/v1/faq/:id.
func (s *Server) updateFAQHandler(c *gin.Context) {
	var req UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.faqs.Update(c.Request.Context(), c.Param("id"), services.UpdateFAQInput{
		Question: req.Question,
		Keywords: req.Keywords,
		Answer:   req.Answer,
		IsActive: req.IsActive,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	s.invalidateMatcher()
	c.JSON(http.StatusOK, item)
}

// deleteFAQHandler handles DELETE /api/v1/faq/:id.
func (s *Server) deleteFAQHandler(c *gin.Context) {
	if err := s.faqs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	s.invalidateMatcher()
	c.Status(http.StatusNoContent)
}

func (s *Server) invalidateMatcher() {
	if s.matcher != nil {
		s.matcher.Invalidate()
	}
}
