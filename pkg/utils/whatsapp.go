package utils

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultWhatsAppNumber is the rental agent's business number.
const DefaultWhatsAppNumber = "6281328864042"

// BookingMessage carries everything the WhatsApp confirmation text needs.
// Optional fields left empty are omitted from the message.
type BookingMessage struct {
	CustomerName string
	Address      string
	VehicleName  string
	StartDate    time.Time
	EndDate      time.Time
	Days         int64

	PickupLocation string
	PickupTime     string
	ReturnLocation string
	ReturnTime     string

	RentalMode    string
	HelmetCount   int64
	RaincoatCount int64

	TotalPrice int64
}

// Compose builds the human-readable confirmation message handed to WhatsApp.
// Block order is fixed: greeting, pickup/return details, rental mode,
// accessories, total. Conditional blocks appear only when their field is set.
func (m BookingMessage) Compose() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Halo, saya %s dengan alamat %s akan menyewa kendaraan %s dari %s sampai %s selama %d hari.",
		m.CustomerName, m.Address, m.VehicleName,
		FormatTanggalLengkap(m.StartDate), FormatTanggalLengkap(m.EndDate), m.Days)

	if m.PickupLocation != "" {
		fmt.Fprintf(&b, "\n\nLokasi Pengambilan: %s", m.PickupLocation)
	}
	if m.PickupTime != "" {
		fmt.Fprintf(&b, "\nWaktu Pengambilan: %s", m.PickupTime)
	}
	if m.ReturnLocation != "" {
		fmt.Fprintf(&b, "\nLokasi Pengembalian: %s", m.ReturnLocation)
	}
	if m.ReturnTime != "" {
		fmt.Fprintf(&b, "\nWaktu Pengembalian: %s", m.ReturnTime)
	}

	if m.RentalMode != "" {
		fmt.Fprintf(&b, "\n\nJenis Sewa: %s", m.RentalMode)
	}

	if m.HelmetCount > 0 || m.RaincoatCount > 0 {
		b.WriteString("\n\nTambahan:")
		if m.HelmetCount > 0 {
			fmt.Fprintf(&b, "\n- Helm: %d unit", m.HelmetCount)
		}
		if m.RaincoatCount > 0 {
			fmt.Fprintf(&b, "\n- Mantel: %d unit", m.RaincoatCount)
		}
	}

	fmt.Fprintf(&b, "\n\nTotal: %s", FormatRupiah(m.TotalPrice))

	return b.String()
}

// WhatsAppURL builds the wa.me deep link for a composed message. Spaces are
// percent-encoded so the link survives messaging clients that split on '+'.
func WhatsAppURL(message string) string {
	number := os.Getenv("WHATSAPP_NUMBER")
	if number == "" {
		number = DefaultWhatsAppNumber
	}

	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}
