package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type JobHandler struct {
	jobs    services.JobService
	listing services.ListingService
}

func NewJobHandler(jobs services.JobService, listing services.ListingService) *JobHandler {
	return &JobHandler{jobs: jobs, listing: listing}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`

	EducationRequirements []string `json:"education_requirements" binding:"required"`

	Metadata json.RawMessage `json:"metadata,omitempty"`
}

func (h *JobHandler) Create(c *gin.Context) {
	employerID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), employerID, req.Title, req.CompanyName, req.Description, req.EducationRequirements, req.Metadata)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// List returns the catalog a seeker is allowed to see: eligibility-filtered
// and with already-applied postings removed.
func (h *JobHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.listing.ListForSeeker(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Mine(c *gin.Context) {
	employerID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobs.ListByEmployer(c.Request.Context(), employerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
