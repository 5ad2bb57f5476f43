package controllers

import (
	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// Login xác thực admin và trả về JWT
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	token, role, err := services.AdminLogin(req.Username, req.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		Role:  role,
	})
}
