package middleware

import (
	"net/http"
	"strings"

	"readdash-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by Identity.
const (
	CtxUID         = "uid"
	CtxEmail       = "email"
	CtxDisplayName = "display_name"
	CtxPhotoURL    = "photo_url"
	CtxRole        = "role"
)

// Identity validates the session token issued by the identity provider and
// exposes the {uid, email, displayName, photoURL} tuple to handlers. The
// service never manages credentials itself.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_TOKEN",
			})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
				"code":  "INVALID_TOKEN",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims", "code": "INVALID_TOKEN"})
			c.Abort()
			return
		}
		uid, _ := claims["sub"].(string)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token missing subject", "code": "INVALID_TOKEN"})
			c.Abort()
			return
		}
		c.Set(CtxUID, uid)
		if v, ok := claims["email"].(string); ok {
			c.Set(CtxEmail, v)
		}
		if v, ok := claims["name"].(string); ok {
			c.Set(CtxDisplayName, v)
		}
		if v, ok := claims["picture"].(string); ok {
			c.Set(CtxPhotoURL, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Set(CtxRole, v)
		}
		c.Next()
	}
}

// CurrentIdentity rebuilds the identity tuple from the request context.
func CurrentIdentity(c *gin.Context) models.User {
	return models.User{
		UID:         c.GetString(CtxUID),
		Email:       c.GetString(CtxEmail),
		DisplayName: c.GetString(CtxDisplayName),
		PhotoURL:    c.GetString(CtxPhotoURL),
	}
}

// RequireAdmin gates admin routes on the role claim.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Administrator access required",
				"code":  "FORBIDDEN",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
