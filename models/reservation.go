package models

type Reservation struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	CustomerID int    `json:"customerId"`
	CheckIn    string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut   string `json:"checkOut"` // YYYY-MM-DD
	// RoomNumber = constants.RoomUnassigned nếu scheduler không xếp được phòng
	RoomNumber int `json:"roomNumber"`
	// Floor và RoomType là bản sao thuộc tính phòng tại thời điểm đặt
	Floor      int     `json:"floor"`
	RoomType   string  `json:"roomType"`
	Nights     int     `json:"nights"`
	FinalPrice float64 `json:"finalPrice"`
}

// Overlaps kiểm tra hai khoảng ngày [checkIn, checkOut) có giao nhau không.
// So sánh chuỗi YYYY-MM-DD tương đương so sánh thời gian. Check-out trùng
// ngày check-in của reservation khác KHÔNG tính là giao nhau (cho phép
// trả phòng và nhận phòng cùng ngày).
func (r *Reservation) Overlaps(other *Reservation) bool {
	return !(r.CheckOut <= other.CheckIn || other.CheckOut <= r.CheckIn)
}
