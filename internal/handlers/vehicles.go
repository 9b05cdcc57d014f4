package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rentalkita/rentalkita-backend/internal/models"
	"github.com/rentalkita/rentalkita-backend/internal/services"
	"github.com/rentalkita/rentalkita-backend/pkg/utils"
)

// DefaultCatalogPageSize matches the storefront's "load more" page size.
const DefaultCatalogPageSize = 8

// ListVehicles retrieves one catalog page, optionally filtered by vehicle type
// and rental date range. Ordering is id ascending so successive offsets never
// skip or duplicate entries. hasMore is the full-page heuristic.
func ListVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultCatalogPageSize)))
		if err != nil || limit <= 0 {
			limit = DefaultCatalogPageSize
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}
		vehicleType := c.Query("jenis")
		startDate := c.Query("startDate")
		endDate := c.Query("endDate")

		cacheKey := services.CatalogPageKey(limit, offset, vehicleType, startDate, endDate)
		if cached, ok := services.GetCatalogPage(c.Request.Context(), cacheKey); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}

		query := db.Order("vehicles.id ASC").Limit(limit).Offset(offset)

		if vehicleType != "" {
			query = query.Where("vehicles.type = ?", vehicleType)
		}

		// A complete date range hides vehicles already booked for overlapping
		// dates. Partial or unparseable dates leave the catalog unfiltered.
		if startDate != "" && endDate != "" {
			from, errFrom := parseDate(startDate)
			to, errTo := parseDate(endDate)
			if errFrom == nil && errTo == nil {
				query = query.Where(
					"NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.vehicle_id = vehicles.id AND bookings.deleted_at IS NULL AND bookings.start_date < ? AND bookings.end_date > ?)",
					to, from)
			}
		}

		var vehicles []models.Vehicle
		if err := query.Find(&vehicles).Error; err != nil {
			zap.S().Errorw("failed to fetch vehicles", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data kendaraan."})
			return
		}

		response := gin.H{
			"data":    vehicles,
			"hasMore": len(vehicles) == limit,
		}

		if payload, err := json.Marshal(response); err == nil {
			if err := services.SetCatalogPage(c.Request.Context(), cacheKey, payload); err != nil {
				zap.S().Warnw("failed to cache catalog page", "key", cacheKey, "error", err)
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// GetVehicle retrieves a single vehicle by id
func GetVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data kendaraan tidak ditemukan."})
			return
		}

		c.JSON(http.StatusOK, vehicle)
	}
}

// GetRentalQuote prices a prospective rental without creating anything: the
// server-side equivalent of the checkout summary card.
func GetRentalQuote(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.Query("from")
		to := c.Query("to")
		if from == "" || to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tanggal mulai dan akhir wajib diisi."})
			return
		}

		startDate, errFrom := parseDate(from)
		endDate, errTo := parseDate(to)
		if errFrom != nil || errTo != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal tidak valid."})
			return
		}

		helmets, _ := strconv.ParseInt(c.DefaultQuery("helm", "0"), 10, 64)
		raincoats, _ := strconv.ParseInt(c.DefaultQuery("mantel", "0"), 10, 64)
		rentalMode := c.Query("rentalMode")

		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data kendaraan tidak ditemukan."})
			return
		}

		price := utils.CalculateTotalPrice(startDate, endDate, rentalMode, helmets, raincoats, vehicle.DailyRate)

		c.JSON(http.StatusOK, gin.H{
			"vehicleId":      vehicle.ID,
			"vehicleName":    vehicle.Name,
			"vehicleType":    vehicle.Type,
			"startDate":      utils.FormatTanggalLengkap(startDate),
			"endDate":        utils.FormatTanggalLengkap(endDate),
			"days":           price.Days,
			"breakdown":      price.Breakdown,
			"totalPrice":     price.TotalPrice,
			"totalFormatted": utils.FormatRupiah(price.TotalPrice),
		})
	}
}
