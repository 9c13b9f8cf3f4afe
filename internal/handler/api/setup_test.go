//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"

	"stay-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const roleHeader = "X-Test-Role"

var assertErr = errors.New("boom")

// fakeAuth treats the bearer token as the caller's user ID so tests can pick
// the identity per request. The role defaults to user.
func fakeAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	id, err := uuid.Parse(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	role := user.RoleUser
	if r := c.GetHeader(roleHeader); r != "" {
		role = user.Role(r)
	}
	c.Set("user_id", id)
	c.Set("user_role", role)
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
