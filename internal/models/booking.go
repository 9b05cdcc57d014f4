package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusAwaitingPayment BookingStatus = "Belum Dibayar"
)

type RentalMode string

const (
	RentalModeWithDriver    RentalMode = "Dengan Sopir"
	RentalModeWithoutDriver RentalMode = "Tanpa Sopir"
)

type Booking struct {
	gorm.Model
	VehicleID uint      `json:"vehicleId" gorm:"not null"`
	Vehicle   Vehicle   `json:"vehicle"`
	StartDate time.Time `json:"startDate" gorm:"not null"`
	EndDate   time.Time `json:"endDate" gorm:"not null"`

	CustomerName string `json:"customerName" gorm:"not null"`
	NationalID   string `json:"nationalId" gorm:"column:national_id"`
	PhoneNumber  string `json:"phoneNumber" gorm:"column:phone_number"`
	Address      string `json:"address"`

	PickupLocation string `json:"pickupLocation,omitempty"`
	PickupTime     string `json:"pickupTime,omitempty"`
	ReturnLocation string `json:"returnLocation,omitempty"`
	ReturnTime     string `json:"returnTime,omitempty"`

	RentalMode    RentalMode `json:"rentalMode"`
	HelmetCount   int64      `json:"helmetCount"`
	RaincoatCount int64      `json:"raincoatCount"`

	RenterIDCardURL    string `json:"renterIdCardUrl" gorm:"column:renter_id_card_url"`
	GuarantorIDCardURL string `json:"guarantorIdCardUrl" gorm:"column:guarantor_id_card_url"`
	EmployeeIDURL      string `json:"employeeIdUrl,omitempty" gorm:"column:employee_id_url"`
	DrivingLicenseURL  string `json:"drivingLicenseUrl" gorm:"column:driving_license_url"`
	TrainTicketURL     string `json:"trainTicketUrl,omitempty" gorm:"column:train_ticket_url"`

	TotalPrice int64         `json:"totalPrice" gorm:"not null"`
	Status     BookingStatus `json:"status" gorm:"not null;default:'Belum Dibayar'"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}
