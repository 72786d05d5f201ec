package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type VerificationHandler struct {
	verification services.VerificationService
	cvDocs       services.CVDocumentService
}

func NewVerificationHandler(verification services.VerificationService, cvDocs services.CVDocumentService) *VerificationHandler {
	return &VerificationHandler{verification: verification, cvDocs: cvDocs}
}

// ATSScore is a read-only diagnostic: keyword density of the uploaded CV
// mapped to a qualitative remark. No gate, no side effects.
func (h *VerificationHandler) ATSScore(c *gin.Context) {
	const op = "VerificationHandler.ATSScore"

	doc, _, mimeType, _, err := readUpload(c, "cv")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing or invalid multipart field 'cv'", err))
		return
	}

	report, err := h.verification.ATSScore(c.Request.Context(), doc, mimeType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// AttachCV verifies and archives a new CV for the authenticated seeker.
func (h *VerificationHandler) AttachCV(c *gin.Context) {
	const op = "VerificationHandler.AttachCV"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	doc, fileName, mimeType, size, err := readUpload(c, "cv")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing or invalid multipart field 'cv'", err))
		return
	}

	row, report, err := h.cvDocs.AttachCV(c.Request.Context(), userID, fileName, size, mimeType, doc)
	if err != nil {
		if report != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{
				"code":    utils.CodeInvalidArgument,
				"message": "cv verification failed",
				"report":  report,
			})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": row, "report": report})
}
