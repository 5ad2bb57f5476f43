package validator

import (
	"regexp"
	"strconv"
	"time"

	"hms/constants"
	"hms/dto"
	"hms/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ]{6,14}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateCustomer validate thông tin customer
func ValidateCustomer(req *dto.CustomerRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if req.Phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !phonePattern.MatchString(req.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !emailPattern.MatchString(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateRoomType kiểm tra loại phòng thuộc tập đóng Single/Double/Suite
func ValidateRoomType(roomType string) error {
	switch roomType {
	case constants.RoomTypeSingle, constants.RoomTypeDouble, constants.RoomTypeSuite:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidType, "Loại phòng không hợp lệ: "+roomType, nil)
}

// ValidateDate kiểm tra chuỗi ngày YYYY-MM-DD hợp lệ theo lịch thực
// (bao gồm năm nhuận)
func ValidateDate(date string) error {
	if !datePattern.MatchString(date) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày phải có định dạng YYYY-MM-DD: "+date, nil)
	}

	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])

	if year < 1900 || month < 1 || month > 12 || day < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày không tồn tại trên lịch: "+date, nil)
	}

	mdays := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leap := (year%4 == 0 && year%100 != 0) || year%400 == 0
	if leap {
		mdays[1] = 29
	}

	if day > mdays[month-1] {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày không tồn tại trên lịch: "+date, nil)
	}

	return nil
}

// ValidateDateRange kiểm tra khoảng ngày đặt phòng: hai ngày hợp lệ,
// không nằm trong quá khứ và check-out sau check-in
func ValidateDateRange(checkIn, checkOut string) error {
	if err := ValidateDate(checkIn); err != nil {
		return err
	}
	if err := ValidateDate(checkOut); err != nil {
		return err
	}

	today := time.Now().Format(constants.DateLayout)
	if checkIn < today {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}

	if checkOut <= checkIn {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", errors.ErrInvalidRange)
	}

	return nil
}
