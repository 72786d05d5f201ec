package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type ApplicationHandler struct {
	apps     services.ApplicationService
	profiles services.ProfileService
}

func NewApplicationHandler(apps services.ApplicationService, profiles services.ProfileService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, profiles: profiles}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobID := c.Param("job_id")
	if jobID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "missing job_id", nil))
		return
	}

	profile, err := h.profiles.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	app, err := h.apps.Apply(c.Request.Context(), jobID, userID, profile.FullName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	employerID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.apps.ListForEmployer(c.Request.Context(), employerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": rows})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.apps.ListForApplicant(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": rows})
}

type DecisionRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"` // accepted|rejected
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	employerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Decide", "invalid request body", err))
		return
	}

	if err := h.apps.Decide(c.Request.Context(), c.Param("id"), req.Status, employerID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.apps.Delete(c.Request.Context(), c.Param("id"), userID, requesterRole(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
