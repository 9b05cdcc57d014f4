package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{100, "Rp 100"},
		{5000, "Rp 5.000"},
		{190000, "Rp 190.000"},
		{300000, "Rp 300.000"},
		{1050000, "Rp 1.050.000"},
		{1234567890, "Rp 1.234.567.890"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.amount))
	}
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "01 Januari 2025", FormatTanggal(date(2025, time.January, 1)))
	assert.Equal(t, "17 Agustus 2025", FormatTanggal(date(2025, time.August, 17)))
	assert.Equal(t, "09 Desember 2024", FormatTanggal(date(2024, time.December, 9)))
}

func TestFormatTanggalLengkap(t *testing.T) {
	// 2025-01-01 is a Wednesday, 2025-08-17 a Sunday
	assert.Equal(t, "Rabu, 01 Januari 2025", FormatTanggalLengkap(date(2025, time.January, 1)))
	assert.Equal(t, "Minggu, 17 Agustus 2025", FormatTanggalLengkap(date(2025, time.August, 17)))
	assert.Equal(t, "Senin, 06 Januari 2025", FormatTanggalLengkap(date(2025, time.January, 6)))
}
