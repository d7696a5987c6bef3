package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/jwt"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if time.Until(claims.ExpiresAt.Time) < time.Minute {
			newToken, _ := jwt.GenerateToken(secret, claims.UserID, "access", 30*time.Minute)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
