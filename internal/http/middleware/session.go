package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/services"
	"github.com/iwansal64/report-web-api/internal/utils"
)

// Cookie names shared with the frontend.
const (
	SessionCookie = "user_token"
	AdminCookie   = "admin_token"
)

// ContextEmail is the gin context key holding the verified session email.
const ContextEmail = "email"

// SessionAuth requires a valid user_token cookie and stores the verified
// email on the context.
func SessionAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			unauthorized(c, "missing session")
			return
		}

		email, err := tokens.VerifyToken(tokenStr)
		if err != nil {
			unauthorized(c, "invalid session")
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

// TeacherOnly requires a valid session that resolves to a teacher
// account. A verified token with any other role is still rejected.
func TeacherOnly(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			unauthorized(c, "missing session")
			return
		}

		if !tokens.IsTeacher(c.Request.Context(), tokenStr) {
			unauthorized(c, "teacher role required")
			return
		}

		c.Next()
	}
}

// AdminSecret gates the raw report update route on the shared admin
// cookie. This is a static secret compare, not a signed token.
func AdminSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided, err := c.Cookie(AdminCookie)
		if err != nil || secret == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			unauthorized(c, "admin secret required")
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message, nil))
	c.Abort()
}
