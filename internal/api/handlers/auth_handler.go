package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/utils"
)

type AuthHandler struct {
	svc services.RegistrationService
}

func NewAuthHandler(svc services.RegistrationService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// RegisterSeeker expects multipart form fields (email, password, full_name,
// education_level) plus a "cv" file; the CV must verify before the account is
// created. On a failed gate the verification report is returned so the user
// can self-correct.
func (h *AuthHandler) RegisterSeeker(c *gin.Context) {
	const op = "AuthHandler.RegisterSeeker"

	cv, _, mimeType, _, err := readUpload(c, "cv")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing or invalid multipart field 'cv'", err))
		return
	}

	user, report, err := h.svc.RegisterSeeker(
		c.Request.Context(),
		c.PostForm("email"),
		c.PostForm("password"),
		c.PostForm("full_name"),
		c.PostForm("education_level"),
		cv, mimeType,
	)
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

	c.JSON(http.StatusCreated, gin.H{"user": user, "report": report})
}

// RegisterEmployer expects multipart form fields (email, password, full_name,
// company_name) plus a "certificate" file naming the company.
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	const op = "AuthHandler.RegisterEmployer"

	cert, _, mimeType, _, err := readUpload(c, "certificate")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing or invalid multipart field 'certificate'", err))
		return
	}

	user, report, err := h.svc.RegisterEmployer(
		c.Request.Context(),
		c.PostForm("email"),
		c.PostForm("password"),
		c.PostForm("full_name"),
		c.PostForm("company_name"),
		cert, mimeType,
	)
	if err != nil {
		if report != nil {
			c.JSON(utils.HTTPStatus(err), gin.H{
				"code":    utils.CodeInvalidArgument,
				"message": "certificate verification failed",
				"report":  report,
			})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "report": report})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
