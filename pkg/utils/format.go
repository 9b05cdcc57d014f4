package utils

import (
	"fmt"
	"strconv"
	"time"
)

// Indonesian day and month names; Go carries no id-ID locale data.
var (
	namaHari = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

	namaBulan = [...]string{"",
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// FormatRupiah renders a whole-rupiah amount with id-ID digit grouping and the
// currency prefix, e.g. 1050000 -> "Rp 1.050.000". No fractional digits.
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, digits[i])
	}

	if negative {
		return "-Rp " + string(grouped)
	}
	return "Rp " + string(grouped)
}

// FormatTanggal renders a date in Indonesian long form, e.g. "01 Januari 2025".
func FormatTanggal(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), namaBulan[int(t.Month())], t.Year())
}

// FormatTanggalLengkap prefixes the weekday name, e.g. "Senin, 01 Januari 2025".
func FormatTanggalLengkap(t time.Time) string {
	return fmt.Sprintf("%s, %s", namaHari[int(t.Weekday())], FormatTanggal(t))
}
