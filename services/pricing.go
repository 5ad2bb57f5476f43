package services

import (
	"time"

	"hms/constants"
)

// BaseRateForRoomType trả về giá cơ bản mỗi đêm theo loại phòng
func BaseRateForRoomType(roomType string) float64 {
	switch roomType {
	case constants.RoomTypeSingle:
		return constants.BaseRateSingle
	case constants.RoomTypeDouble:
		return constants.BaseRateDouble
	case constants.RoomTypeSuite:
		return constants.BaseRateSuite
	}
	return 0
}

// CalculateNights tính số đêm giữa hai ngày YYYY-MM-DD.
// time.Parse xử lý năm nhuận nên số ngày luôn đúng theo lịch thực.
func CalculateNights(checkIn, checkOut string) int {
	in, err := time.Parse(constants.DateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(constants.DateLayout, checkOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// ComputeFinalPrice tính giá cuối cùng: nights * giá cơ bản, giảm 10% nếu
// bộ đếm đặt phòng tích lũy của customer (trước lần đặt này) đạt ngưỡng
func ComputeFinalPrice(nights int, roomType string, priorBookings int) (float64, bool) {
	price := float64(nights) * BaseRateForRoomType(roomType)

	if priorBookings >= constants.LoyaltyThreshold {
		return price * (1 - constants.LoyaltyDiscount), true
	}
	return price, false
}
