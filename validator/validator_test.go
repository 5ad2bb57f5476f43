package validator

import (
	"testing"

	"hms/dto"
	"hms/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateCustomer(t *testing.T) {
	valid := dto.CustomerRequest{Name: "Nguyễn Văn A", Phone: "70 123 456", Email: "a@example.com"}
	assert.NoError(t, ValidateCustomer(&valid))

	tests := []struct {
		name string
		req  dto.CustomerRequest
		code errors.ErrorCode
	}{
		{"thiếu tên", dto.CustomerRequest{Phone: "70 123 456", Email: "a@example.com"}, errors.ErrCodeRequiredField},
		{"thiếu số điện thoại", dto.CustomerRequest{Name: "A", Email: "a@example.com"}, errors.ErrCodeRequiredField},
		{"số điện thoại có chữ", dto.CustomerRequest{Name: "A", Phone: "abc123", Email: "a@example.com"}, errors.ErrCodeInvalidPhone},
		{"thiếu email", dto.CustomerRequest{Name: "A", Phone: "70 123 456"}, errors.ErrCodeRequiredField},
		{"email không có domain", dto.CustomerRequest{Name: "A", Phone: "70 123 456", Email: "a@"}, errors.ErrCodeInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCustomer(&tt.req)
			assert.True(t, errors.HasCode(err, tt.code))
		})
	}
}

func TestValidateRoomType(t *testing.T) {
	assert.NoError(t, ValidateRoomType("Single"))
	assert.NoError(t, ValidateRoomType("Double"))
	assert.NoError(t, ValidateRoomType("Suite"))

	err := ValidateRoomType("Penthouse")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidType))

	// Phân biệt hoa thường
	err = ValidateRoomType("single")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidType))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2030-01-15"))
	assert.NoError(t, ValidateDate("2028-02-29")) // năm nhuận
	assert.NoError(t, ValidateDate("2000-02-29")) // chia hết 400 vẫn nhuận

	invalid := []string{
		"2030/01/15",  // sai dấu phân cách
		"30-01-15",    // thiếu số năm
		"2030-13-01",  // tháng 13
		"2030-00-10",  // tháng 0
		"2030-04-31",  // tháng 4 chỉ có 30 ngày
		"2029-02-29",  // 2029 không nhuận
		"2100-02-29",  // chia hết 100 nhưng không chia hết 400
		"2030-01-00",  // ngày 0
		"abcd-ef-gh",  // không phải số
	}
	for _, date := range invalid {
		err := ValidateDate(date)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDate), "phải từ chối %q", date)
	}
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("2030-01-01", "2030-01-03"))

	// Check-out phải sau check-in, kể cả bằng nhau cũng không hợp lệ
	err := ValidateDateRange("2030-01-03", "2030-01-03")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))

	err = ValidateDateRange("2030-01-05", "2030-01-03")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))

	// Ngày trong quá khứ
	err = ValidateDateRange("2020-01-01", "2020-01-03")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDate))

	// Ngày hỏng thì báo lỗi ngày trước khi xét khoảng
	err = ValidateDateRange("2030-02-30", "2030-03-01")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDate))
}
