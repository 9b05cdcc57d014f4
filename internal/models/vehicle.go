package models

import (
	"strings"

	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "mobil"
	VehicleTypeMotorcycle VehicleType = "motor"
)

type Vehicle struct {
	gorm.Model
	Name      string      `json:"name" gorm:"column:name;not null"`
	Type      VehicleType `json:"type" gorm:"column:type;not null"`
	DailyRate int64       `json:"dailyRate" gorm:"column:daily_rate;not null"`
	ImageURL  string      `json:"imageUrl" gorm:"column:image_url"`
	Images    []string    `json:"images" gorm:"column:images;serializer:json"`
}

// TableName specifies the table name
func (Vehicle) TableName() string {
	return "vehicles"
}

// IsMotorcycle reports whether the vehicle follows the motorcycle checkout flow.
// The original catalog stored free-text types, so match by substring.
func (v *Vehicle) IsMotorcycle() bool {
	return strings.Contains(strings.ToLower(string(v.Type)), "motor")
}
