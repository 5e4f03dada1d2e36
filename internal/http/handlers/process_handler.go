package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/topogame/TalentFlow-sub001/internal/dto"
	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/service"
)

// ProcessHandler is the HTTP layer over the recruitment pipeline.
type ProcessHandler struct {
	processes *service.ProcessService
}

func NewProcessHandler(processes *service.ProcessService) *ProcessHandler {
	return &ProcessHandler{processes: processes}
}

// CreateProcess handles POST /processes.
func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.CreateProcessInput{
		CandidateID:  uuid.MustParse(req.CandidateID),
		FirmID:       uuid.MustParse(req.FirmID),
		PositionID:   uuid.MustParse(req.PositionID),
		InitialStage: models.ProcessStage(req.InitialStage),
		FitnessScore: req.FitnessScore,
		Note:         req.Note,
		ActorID:      actorID,
	}
	if req.AssignedToID != nil {
		assignedTo, err := uuid.Parse(*req.AssignedToID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assigned_to_id"})
			return
		}
		in.AssignedToID = &assignedTo
	}

	process, warnings, err := h.processes.CreateProcess(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	if warnings == nil {
		warnings = []string{}
	}

	c.JSON(http.StatusCreated, dto.CreateProcessResponse{
		Process:  process,
		Warnings: warnings,
	})
}

// ChangeStage handles PATCH /processes/:id/stage.
func (h *ProcessHandler) ChangeStage(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	processID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid process id"})
		return
	}

	var req dto.ChangeStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	process, err := h.processes.ChangeStage(c.Request.Context(), processID, models.ProcessStage(req.Stage), req.Note, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, process)
}

// GetProcess handles GET /processes/:id.
func (h *ProcessHandler) GetProcess(c *gin.Context) {
	processID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid process id"})
		return
	}

	process, err := h.processes.GetProcess(c.Request.Context(), processID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, process)
}

// ListHistory handles GET /processes/:id/history.
func (h *ProcessHandler) ListHistory(c *gin.Context) {
	processID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid process id"})
		return
	}

	history, err := h.processes.ListHistory(c.Request.Context(), processID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
