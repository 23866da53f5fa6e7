package handlers

import (
	"github.com/farmride/farmride-backend/internal/middleware"
	"github.com/farmride/farmride-backend/internal/models"
	"github.com/farmride/farmride-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	PhoneNo  string `json:"phone_no" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Village  string `json:"village"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			c.JSON(409, gin.H{"error": "Username already exists"})
			return
		}
		if err := db.Where("phone_no = ?", input.PhoneNo).First(&existing).Error; err == nil {
			c.JSON(409, gin.H{"error": "Phone number already registered"})
			return
		}

		user := models.User{
			Username: input.Username,
			PhoneNo:  input.PhoneNo,
			FullName: input.FullName,
			Village:  input.Village,
			IsAdmin:  input.IsAdmin,
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		logrus.WithField("username", user.Username).Info("user registered")

		c.JSON(201, gin.H{
			"message": "User registered successfully",
			"user":    user,
		})
	}
}

// Login verifies credentials and returns a bearer token.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Username and password required"})
			return
		}

		// Same error for unknown user and wrong password.
		var user models.User
		if err := db.Where("username = ?", input.Username).First(&user).Error; err != nil {
			c.JSON(401, gin.H{"error": "Invalid username or password"})
			return
		}
		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}

// Logout is stateless; the client just discards the token.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Logout successful"})
	}
}

// GetProfile returns the authenticated user's record.
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(200, user)
	}
}
