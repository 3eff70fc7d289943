package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const emailContextKey = "authEmail"

// Middleware validates the access token and injects the authenticated
// email into the request context. The token is accepted either as a
// Bearer header or as the legacy cookie.
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString, _ = c.Cookie(CookieName)
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authentication token provided"})
			return
		}

		claims, err := service.Validate(tokenString)
		if err != nil {
			log.Warn().Str("path", c.Request.URL.Path).Msg("rejected invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(emailContextKey, claims.Email)
		c.Next()
	}
}

// EmailFromContext returns the authenticated email, or "" for
// unauthenticated requests.
func EmailFromContext(c *gin.Context) string {
	return c.GetString(emailContextKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
