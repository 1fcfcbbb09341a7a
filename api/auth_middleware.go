package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lacancha/court-booking-backend/auth"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password, name, phone string) (auth.User, string, error)
	SignIn(ctx context.Context, email, password string) (auth.User, string, error)
	SignOut(token string)
	CurrentUser(ctx context.Context, token string) (auth.User, error)
	UpdateProfile(ctx context.Context, userID, name, phone string) (auth.User, error)
}

func Auth(authService AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", token)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.User)

		if !user.Admin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return token
	}

	return ""
}
