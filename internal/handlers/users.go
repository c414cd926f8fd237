package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/models"
	"gorm.io/gorm"
)

// CheckAdmin reports whether the named user has the admin flag set.
// A missing user is a 404, not a server error.
func CheckAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("username = ?", input.Username).First(&user).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if !user.IsAdmin {
			c.JSON(403, gin.H{"error": "User is not an admin"})
			return
		}

		c.JSON(200, gin.H{"message": "User is an admin", "isAdmin": true})
	}
}

// GetAllUsers retrieves all users in the system
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(200, users)
	}
}

// DeleteUser removes a user by id. Reservations made by the user are
// left in place.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ID uint `json:"_id" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Delete(&models.User{}, input.ID).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(200, gin.H{"message": "Success"})
	}
}
