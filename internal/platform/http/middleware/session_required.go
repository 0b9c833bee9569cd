// Package middleware provides Gin middleware shared by feature routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yoga_storefront/internal/feature/auth/domain/entity"
	"yoga_storefront/internal/shared/notice"
)

// ContextUserEmail is the gin context key holding the signed-in user's email.
const ContextUserEmail = "userEmail"

// SessionReader exposes the device session.
type SessionReader interface {
	CurrentUser() *entity.User
}

// SessionRequired returns a Gin middleware that restricts access to a signed-in device session.
// On success the user's email is stored under ContextUserEmail.
func SessionRequired(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.CurrentUser()
		if user == nil || user.Email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, notice.Failed(notice.Fail("User not authenticated")))
			return
		}
		c.Set(ContextUserEmail, user.Email)
		c.Next()
	}
}

// UserEmail returns the email stored by SessionRequired, or "" if absent.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
