package handlers

import (
	"net/http"

	"pressroom/middleware"
	"pressroom/services/grievance"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
)

// GrievanceHandler exposes the legal-grievance workflow.
type GrievanceHandler struct {
	Service grievance.GrievanceService
}

func NewGrievanceHandler(svc grievance.GrievanceService) *GrievanceHandler {
	return &GrievanceHandler{Service: svc}
}

// SubmitHandler handles POST /api/grievances.
func (h *GrievanceHandler) SubmitHandler(c *gin.Context) {
	var input grievance.GrievanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filed, err := h.Service.Submit(c.Request.Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, filed)
}

// GetHandler handles GET /api/grievances/:id.
func (h *GrievanceHandler) GetHandler(c *gin.Context) {
	found, err := h.Service.GetByID(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// MineHandler handles GET /api/grievances/mine.
func (h *GrievanceHandler) MineHandler(c *gin.Context) {
	filed, err := h.Service.ListForReporter(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grievances": filed})
}

// QueueHandler handles GET /api/grievances. Admin queue, optionally
// filtered by ?status=.
func (h *GrievanceHandler) QueueHandler(c *gin.Context) {
	queue, err := h.Service.ListByStatus(c.Request.Context(), middleware.CurrentAccount(c), c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grievances": queue})
}

// TransitionHandler handles POST /api/grievances/:id/transition.
func (h *GrievanceHandler) TransitionHandler(c *gin.Context) {
	var req struct {
		Status     string `json:"status" binding:"required"`
		Note       string `json:"note"`
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	moved, err := h.Service.Transition(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Status, req.Note, req.Resolution)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moved)
}

// NoteHandler handles POST /api/grievances/:id/notes.
func (h *GrievanceHandler) NoteHandler(c *gin.Context) {
	var req struct {
		Note string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	noted, err := h.Service.AddNote(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, noted)
}
