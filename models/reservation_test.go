package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func res(checkIn, checkOut string) *Reservation {
	return &Reservation{CheckIn: checkIn, CheckOut: checkOut}
}

func TestOverlaps(t *testing.T) {
	// Giao nhau một phần
	a := res("2030-01-01", "2030-01-05")
	b := res("2030-01-04", "2030-01-08")
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a), "overlap phải đối xứng")

	// Khoảng này chứa khoảng kia
	c := res("2030-01-02", "2030-01-03")
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(a))

	// Hai khoảng rời nhau hẳn
	d := res("2030-02-01", "2030-02-05")
	assert.False(t, a.Overlaps(d))
	assert.False(t, d.Overlaps(a))
}

func TestOverlapsSameDayTurnover(t *testing.T) {
	// Check-out trùng ngày check-in của khoảng kia: khoảng nửa mở
	// [in, out) nên KHÔNG tính là giao nhau
	a := res("2030-01-01", "2030-01-03")
	b := res("2030-01-03", "2030-01-05")
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlapsIdenticalRange(t *testing.T) {
	a := res("2030-01-01", "2030-01-03")
	b := res("2030-01-01", "2030-01-03")
	assert.True(t, a.Overlaps(b))
}
