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
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

type ReservationController struct {
	Service *services.HotelService
	Rdb     *redis.Client
	Ws      *melody.Melody
}

func NewReservationController(service *services.HotelService, rdb *redis.Client, m *melody.Melody) *ReservationController {
	return &ReservationController{Service: service, Rdb: rdb, Ws: m}
}

func (rc *ReservationController) invalidateCache() {
	_ = services.DeleteFromRedis(config.Ctx, rc.Rdb,
		"reservations:all", "rooms:all", "rooms:available", "customers:all")
}

// CreateReservation đặt phòng: input được validate ở đây, core service
// chỉ nhận tuple đã hợp lệ
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomType(req.RoomType); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	if err := validator.ValidateDateRange(req.CheckIn, req.CheckOut); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	invoice, err := rc.Service.CreateReservation(req)
	if err != nil {
		switch {
		case errors.HasCode(err, errors.ErrCodeNoRoomAvailable):
			response.Conflict(c, "Không còn phòng trống loại này trong khoảng thời gian yêu cầu")
		case errors.HasCode(err, errors.ErrCodeCustomerNotFound):
			response.NotFound(c)
		default:
			response.BadRequest(c, errors.GetAppError(err).Message)
		}
		return
	}

	rc.invalidateCache()
	services.BroadcastEvent(rc.Ws, services.EventReservationCreated, invoice)
	response.Created(c, invoice)
}

// GetReservations trả về toàn bộ reservation, có cache Redis
func (rc *ReservationController) GetReservations(c *gin.Context) {
	cacheKey := "reservations:all"

	var reservations []models.Reservation
	if err := services.GetFromRedis(config.Ctx, rc.Rdb, cacheKey, &reservations); err != nil || len(reservations) == 0 {
		reservations = rc.Service.ListReservations()

		_ = services.SetToRedis(config.Ctx, rc.Rdb, cacheKey, reservations, 10*time.Minute)
	}

	response.SuccessWithTotal(c, reservations, len(reservations))
}

// GetPastReservations trả về các reservation đã trả phòng
func (rc *ReservationController) GetPastReservations(c *gin.Context) {
	reservations := rc.Service.ListPastReservations()
	response.SuccessWithTotal(c, reservations, len(reservations))
}

// GetFutureReservations trả về các reservation chưa tới ngày nhận phòng
func (rc *ReservationController) GetFutureReservations(c *gin.Context) {
	reservations := rc.Service.ListFutureReservations()
	response.SuccessWithTotal(c, reservations, len(reservations))
}

// GetReservationDetail trả về một reservation theo id
func (rc *ReservationController) GetReservationDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reservation, err := rc.Service.GetReservation(id)
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, reservation)
}

// CancelReservation hủy reservation theo id
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := rc.Service.CancelReservation(id); err != nil {
		response.NotFound(c)
		return
	}

	rc.invalidateCache()
	services.BroadcastEvent(rc.Ws, services.EventReservationCancelled, gin.H{"reservationId": id})
	response.Success(c, nil)
}

// OverridePrice cho admin ghi đè giá reservation
func (rc *ReservationController) OverridePrice(c *gin.Context) {
	var req dto.OverridePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	reservation, err := rc.Service.OverrideReservationPrice(req)
	if err != nil {
		response.NotFound(c)
		return
	}

	rc.invalidateCache()
	response.Success(c, reservation)
}
