package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/topogame/TalentFlow-sub001/internal/service"
)

// MatchHandler exposes candidate matching for a position.
type MatchHandler struct {
	matches *service.MatchService
}

func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// GetMatches handles GET /positions/:id/matches.
func (h *MatchHandler) GetMatches(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position id"})
		return
	}

	run, err := h.matches.GetMatches(c.Request.Context(), positionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}
