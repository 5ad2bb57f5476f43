package dto

import "hms/models"

// CustomerRequest là DTO cho request tạo customer
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateCustomerRequest là DTO cho request sửa customer,
// field rỗng nghĩa là giữ nguyên giá trị cũ
type UpdateCustomerRequest struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// CustomerDetailResponse là DTO cho chi tiết customer kèm các reservation
type CustomerDetailResponse struct {
	Customer     models.Customer      `json:"customer"`
	Reservations []models.Reservation `json:"reservations"`
}

// CustomerMatchResponse là một kết quả tìm kiếm customer theo tên
type CustomerMatchResponse struct {
	Customer   models.Customer `json:"customer"`
	Similarity float64         `json:"similarity"`
}
