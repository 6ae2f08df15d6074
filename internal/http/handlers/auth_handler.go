package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/http/middleware"
	"github.com/iwansal64/report-web-api/internal/services"
	"github.com/iwansal64/report-web-api/internal/utils"
)

type AuthHandler struct {
	tokens     *services.TokenService
	sessionTTL time.Duration
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(tokens *services.TokenService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{tokens: tokens, sessionTTL: sessionTTL}
}

// Login verifies the credentials and plants the session cookie. The
// cookie Max-Age matches the expiry claim inside the token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	token, err := h.tokens.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
