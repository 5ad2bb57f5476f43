package constants

// Room type
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// Giá cơ bản mỗi đêm theo loại phòng
const (
	BaseRateSingle = 150.0
	BaseRateDouble = 220.0
	BaseRateSuite  = 450.0
)

// RoomUnassigned là giá trị sentinel khi reservation chưa được gán phòng
const RoomUnassigned = -1

// Loyalty discount
const (
	LoyaltyThreshold = 3
	LoyaltyDiscount  = 0.10
)

// User role
const (
	RoleStaff = 0
	RoleAdmin = 1
)

// DateLayout là định dạng ngày chuẩn YYYY-MM-DD
const DateLayout = "2006-01-02"
