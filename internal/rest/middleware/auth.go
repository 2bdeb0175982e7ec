package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

const missingAuth = "Missing authentication"

// AuthMiddleware accepts HS256 access tokens signed with secret and exposes
// the "id" claim under UserIDKey. Tokens are issued by the authentication
// service, this API only verifies them.
func AuthMiddleware(secret string) gin.HandlerFunc {
	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		tokenStr, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(missingAuth))
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, keyFunc)
		if err != nil || !token.Valid {
			logrus.Debugf("rejecting access token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(missingAuth))
			return
		}

		id, ok := claims["id"].(string)
		if !ok || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(missingAuth))
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}
