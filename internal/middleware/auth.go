package middleware

import (
	"errors"
	"strings"

	"github.com/farmride/farmride-backend/internal/models"
	"github.com/farmride/farmride-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// authenticate validates the bearer token and resolves the user it names.
// On failure it writes the 401 response and aborts the request.
func authenticate(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(401, gin.H{"error": "Token is missing"})
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token format"})
		return nil, false
	}

	token, err := utils.ValidateToken(parts[1])
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			c.AbortWithStatusJSON(401, gin.H{"error": "Token has expired"})
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
		}
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
		return nil, false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
		return nil, false
	}

	// Token verification is stateless; this lookup catches accounts
	// that no longer exist.
	var user models.User
	if err := db.First(&user, uint(userID)).Error; err != nil {
		c.AbortWithStatusJSON(401, gin.H{"error": "User not found"})
		return nil, false
	}

	return &user, true
}

// RequireAuth loads the authenticated user into the context under "currentUser".
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, db)
		if !ok {
			return
		}

		c.Set("currentUser", user)
		c.Set("userId", user.ID)
		c.Next()
	}
}

// RequireAdmin authenticates like RequireAuth and rejects non-admin users.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, db)
		if !ok {
			return
		}

		if !user.IsAdmin {
			c.AbortWithStatusJSON(403, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("currentUser", user)
		c.Set("userId", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth or RequireAdmin, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
