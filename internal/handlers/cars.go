package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/models"
	"github.com/modorcea/rentacar-backend/internal/services"
	"gorm.io/gorm"
)

type AddCarInput struct {
	Name     string  `json:"name" binding:"required"`
	Year     int     `json:"year" binding:"required,gte=1900,lte=2100"`
	Category string  `json:"category" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Seats    int     `json:"seats" binding:"required"`
	Fuel     string  `json:"fuel" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type UpdateCarInput struct {
	Name     string  `json:"name" binding:"required"`
	Year     int     `json:"year"`
	Image    string  `json:"image"`
	Seats    int     `json:"seats"`
	Fuel     string  `json:"fuel"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// AddCar inserts a new listing, or adds the incoming quantity to the
// stock of an existing car with the same name. Matching is exact name
// equality; the existing record's price and metadata are kept.
func AddCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Invalid input fields"})
			return
		}

		var car models.Car
		err := db.Where("name = ?", input.Name).First(&car).Error
		if err == nil {
			car.Quantity += input.Quantity
			if err := db.Save(&car).Error; err != nil {
				c.JSON(500, gin.H{"error": "Failed to update car stock"})
				return
			}
			c.JSON(200, gin.H{"message": "Car added successfully"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(500, gin.H{"error": "Server error"})
			return
		}

		newCar := models.Car{
			Name:     input.Name,
			Year:     input.Year,
			Category: input.Category,
			Image:    input.Image,
			Seats:    input.Seats,
			Fuel:     input.Fuel,
			Quantity: input.Quantity,
			Price:    input.Price,
		}

		if err := db.Create(&newCar).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create car"})
			return
		}

		c.JSON(200, gin.H{"message": "Car added successfully"})
	}
}

// UpdateCar overwrites quantity, price and image of the car matching
// the given name. Year, seats and fuel are accepted in the payload but
// never written. A missing car still reports success.
func UpdateCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateCarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Invalid input fields"})
			return
		}

		var car models.Car
		err := db.Where("name = ?", input.Name).First(&car).Error
		if err == nil {
			car.Quantity = input.Quantity
			car.Price = input.Price
			car.Image = input.Image
			if err := db.Save(&car).Error; err != nil {
				c.JSON(500, gin.H{"error": "Failed to update car"})
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(500, gin.H{"error": "Server error"})
			return
		}

		c.JSON(200, gin.H{"message": "Car updated successfully"})
	}
}

// GetAllCars retrieves all car listings
func GetAllCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cars []models.Car
		if err := db.Find(&cars).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch cars"})
			return
		}

		c.JSON(200, cars)
	}
}

// UploadCarImage stores a car photo and returns its public URL for use
// in the listing's image field.
func UploadCarImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("carImage")
		if err != nil {
			c.JSON(400, gin.H{"error": "Image file is required"})
			return
		}

		imagePath, err := services.UploadImage(file, "cars")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload image"})
			return
		}

		c.JSON(200, gin.H{"imageUrl": services.GetImageURL(imagePath)})
	}
}
