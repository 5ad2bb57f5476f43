package models

type Customer struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Phone string `json:"phone" gorm:"type:varchar(20)"`
	Email string `json:"email"`
	// TotalBookings là số lần đặt phòng tích lũy, không bao giờ giảm
	// kể cả khi hủy reservation
	TotalBookings int `json:"totalBookings" gorm:"default:0"`
}

// IncrementBookings tăng bộ đếm đặt phòng tích lũy
func (c *Customer) IncrementBookings() {
	c.TotalBookings++
}
