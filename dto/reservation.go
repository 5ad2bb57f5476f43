package dto

// CreateReservationRequest là DTO cho request đặt phòng
type CreateReservationRequest struct {
	CustomerID int    `json:"customerId"`
	RoomType   string `json:"roomType"`
	CheckIn    string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut   string `json:"checkOut"` // YYYY-MM-DD
}

// InvoiceResponse là DTO trả về sau khi đặt phòng thành công
type InvoiceResponse struct {
	ReservationID int     `json:"reservationId"`
	CustomerID    int     `json:"customerId"`
	RoomNumber    int     `json:"roomNumber"`
	Floor         int     `json:"floor"`
	RoomType      string  `json:"roomType"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Nights        int     `json:"nights"`
	BaseRate      float64 `json:"baseRate"` // giá mỗi đêm
	LoyaltyApplied bool   `json:"loyaltyApplied"`
	FinalPrice    float64 `json:"finalPrice"`
}

// OverridePriceRequest là DTO cho request admin sửa giá reservation
type OverridePriceRequest struct {
	ReservationID int     `json:"reservationId"`
	NewPrice      float64 `json:"newPrice"`
}

// ScheduleResultResponse là DTO trả về sau khi chạy bulk reallocation
type ScheduleResultResponse struct {
	Total      int   `json:"total"`
	Assigned   int   `json:"assigned"`
	Unassigned []int `json:"unassigned"` // id các reservation không xếp được phòng
}
