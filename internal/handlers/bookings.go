package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentalkita/rentalkita-backend/internal/models"
	"github.com/rentalkita/rentalkita-backend/pkg/utils"
)

// parseDate accepts the calendar-date and full timestamp forms the storefront
// sends interchangeably.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// CreateBooking handles the booking submission workflow: validate the form,
// gate on document uploads, price the rental, persist the booking and hand the
// caller a WhatsApp deep link for payment confirmation.
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			VehicleID      uint               `json:"vehicleId" binding:"required"`
			StartDate      string             `json:"startDate"`
			EndDate        string             `json:"endDate"`
			CustomerName   string             `json:"customerName" binding:"required"`
			NationalID     string             `json:"nationalId"`
			PhoneNumber    string             `json:"phoneNumber"`
			Address        string             `json:"address"`
			PickupLocation string             `json:"pickupLocation"`
			PickupTime     string             `json:"pickupTime"`
			ReturnLocation string             `json:"returnLocation"`
			ReturnTime     string             `json:"returnTime"`
			RentalMode     string             `json:"rentalMode"`
			HelmetCount    int64              `json:"helmetCount"`
			RaincoatCount  int64              `json:"raincoatCount"`
			Documents      models.DocumentSet `json:"documents"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.StartDate == "" || input.EndDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tanggal mulai dan akhir wajib diisi."})
			return
		}

		startDate, err := parseDate(input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid."})
			return
		}
		endDate, err := parseDate(input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid."})
			return
		}

		// Submission must wait for every in-flight document upload.
		if input.Documents.HasUploading() {
			c.JSON(http.StatusConflict, gin.H{"error": "Tunggu hingga seluruh dokumen selesai diunggah."})
			return
		}

		var vehicle models.Vehicle
		if err := db.First(&vehicle, input.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Data kendaraan tidak ditemukan."})
				return
			}
			zap.S().Errorw("failed to fetch vehicle", "vehicleId", input.VehicleID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat rental."})
			return
		}

		// The required set depends on the vehicle type: cars also need a SIM.
		if missing := input.Documents.MissingRequired(vehicle.Type); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":            "Mohon unggah seluruh dokumen wajib sebelum melanjutkan.",
				"missingDocuments": missing,
			})
			return
		}

		price := utils.CalculateTotalPrice(startDate, endDate, input.RentalMode,
			input.HelmetCount, input.RaincoatCount, vehicle.DailyRate)

		booking := models.Booking{
			VehicleID:          vehicle.ID,
			StartDate:          startDate,
			EndDate:            endDate,
			CustomerName:       input.CustomerName,
			NationalID:         input.NationalID,
			PhoneNumber:        input.PhoneNumber,
			Address:            input.Address,
			PickupLocation:     input.PickupLocation,
			PickupTime:         input.PickupTime,
			ReturnLocation:     input.ReturnLocation,
			ReturnTime:         input.ReturnTime,
			RentalMode:         models.RentalMode(input.RentalMode),
			HelmetCount:        input.HelmetCount,
			RaincoatCount:      input.RaincoatCount,
			RenterIDCardURL:    input.Documents.URL(models.DocumentKindRenterID),
			GuarantorIDCardURL: input.Documents.URL(models.DocumentKindGuarantorID),
			EmployeeIDURL:      input.Documents.URL(models.DocumentKindEmployeeID),
			DrivingLicenseURL:  input.Documents.URL(models.DocumentKindDrivingLicense),
			TrainTicketURL:     input.Documents.URL(models.DocumentKindTrainTicket),
			TotalPrice:         price.TotalPrice,
			Status:             models.BookingStatusAwaitingPayment,
		}

		if err := db.Create(&booking).Error; err != nil {
			zap.S().Errorw("failed to insert booking", "vehicleId", vehicle.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat rental."})
			return
		}

		message := utils.BookingMessage{
			CustomerName:   input.CustomerName,
			Address:        input.Address,
			VehicleName:    vehicle.Name,
			StartDate:      startDate,
			EndDate:        endDate,
			Days:           price.Days,
			PickupLocation: input.PickupLocation,
			PickupTime:     input.PickupTime,
			ReturnLocation: input.ReturnLocation,
			ReturnTime:     input.ReturnTime,
			RentalMode:     input.RentalMode,
			HelmetCount:    input.HelmetCount,
			RaincoatCount:  input.RaincoatCount,
			TotalPrice:     price.TotalPrice,
		}.Compose()

		c.JSON(http.StatusCreated, gin.H{
			"booking":     booking,
			"totalPrice":  price.TotalPrice,
			"days":        price.Days,
			"whatsappUrl": utils.WhatsAppURL(message),
		})
	}
}

// GetBookingStatus retrieves detailed booking information
func GetBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := c.Param("id")

		var booking models.Booking
		if err := db.Preload("Vehicle").First(&booking, bookingId).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking tidak ditemukan."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             booking.ID,
			"status":         booking.Status,
			"customerName":   booking.CustomerName,
			"phoneNumber":    booking.PhoneNumber,
			"vehicleName":    booking.Vehicle.Name,
			"startDate":      utils.FormatTanggalLengkap(booking.StartDate),
			"endDate":        utils.FormatTanggalLengkap(booking.EndDate),
			"days":           utils.RentalDays(booking.StartDate, booking.EndDate),
			"rentalMode":     booking.RentalMode,
			"totalPrice":     booking.TotalPrice,
			"totalFormatted": utils.FormatRupiah(booking.TotalPrice),
		})
	}
}
