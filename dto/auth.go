package dto

// LoginRequest là DTO cho request đăng nhập admin
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse là DTO trả về token sau khi đăng nhập
type LoginResponse struct {
	Token string `json:"token"`
	Role  int    `json:"role"`
}
