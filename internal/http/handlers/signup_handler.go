package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/services"
	"github.com/iwansal64/report-web-api/internal/utils"
)

type SignupHandler struct {
	registrations *services.RegistrationService
}

type SignupRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifySignupRequest struct {
	Token string `json:"token" binding:"required"`
}

type SetupSignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

func NewSignupHandler(registrations *services.RegistrationService) *SignupHandler {
	return &SignupHandler{registrations: registrations}
}

func (h *SignupHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.registrations.StartSignup(c.Request.Context(), req.Email); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registration email sent"})
}

func (h *SignupHandler) VerifySignup(c *gin.Context) {
	var req VerifySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.registrations.CheckToken(c.Request.Context(), req.Token); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token valid"})
}

func (h *SignupHandler) SetupSignup(c *gin.Context) {
	var req SetupSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.registrations.CompleteSignup(c.Request.Context(), req.Username, req.Password, req.Token); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account created"})
}
