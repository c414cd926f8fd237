package models

import (
	"gorm.io/gorm"
)

// Car is a rental listing. Quantity is the on-hand stock; adding a car
// with an existing name accumulates quantity instead of inserting a
// second row.
type Car struct {
	gorm.Model
	Name     string  `json:"name" gorm:"not null"`
	Year     int     `json:"year" gorm:"not null"`
	Category string  `json:"category" gorm:"not null"`
	Image    string  `json:"image"`
	Seats    int     `json:"seats" gorm:"not null"`
	Fuel     string  `json:"fuel" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
}

// TableName specifies the table name
func (Car) TableName() string {
	return "cars"
}
