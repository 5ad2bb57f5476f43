package controllers

import (
	"strconv"
	"time"

	"hms/config"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type CustomerController struct {
	Service *services.HotelService
	Rdb     *redis.Client
}

func NewCustomerController(service *services.HotelService, rdb *redis.Client) *CustomerController {
	return &CustomerController{Service: service, Rdb: rdb}
}

func (cc *CustomerController) invalidateCache() {
	_ = services.DeleteFromRedis(config.Ctx, cc.Rdb, "customers:all")
}

// CreateCustomer đăng ký customer mới
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCustomer(&req); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	customer, err := cc.Service.AddCustomer(req)
	if err != nil {
		response.ServerError(c)
		return
	}

	cc.invalidateCache()
	response.Created(c, customer)
}

// GetCustomers trả về danh sách customer, có cache Redis
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	cacheKey := "customers:all"

	var customers []models.Customer
	if err := services.GetFromRedis(config.Ctx, cc.Rdb, cacheKey, &customers); err != nil || len(customers) == 0 {
		customers = cc.Service.ListCustomers()

		// Cache hỏng không chặn response
		_ = services.SetToRedis(config.Ctx, cc.Rdb, cacheKey, customers, 10*time.Minute)
	}

	response.SuccessWithTotal(c, customers, len(customers))
}

// GetCustomerByID trả về chi tiết customer kèm các reservation của họ
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	detail, err := cc.Service.GetCustomerDetail(id)
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, detail)
}

// SearchCustomers tìm customer theo tên (bỏ dấu + fuzzy)
func (cc *CustomerController) SearchCustomers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "Thiếu tham số name")
		return
	}

	matches := cc.Service.SearchCustomersByName(name)
	response.SuccessWithTotal(c, matches, len(matches))
}

// UpdateCustomer sửa thông tin customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	customer, err := cc.Service.UpdateCustomer(req)
	if err != nil {
		response.NotFound(c)
		return
	}

	cc.invalidateCache()
	response.Success(c, customer)
}

// DeleteCustomer xóa customer nếu không còn reservation tham chiếu
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := cc.Service.DeleteCustomer(id); err != nil {
		if errors.HasCode(err, errors.ErrCodeHasDependents) {
			response.Conflict(c, "Customer còn reservation, không thể xóa")
			return
		}
		response.NotFound(c)
		return
	}

	cc.invalidateCache()
	response.Success(c, nil)
}
