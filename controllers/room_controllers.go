package controllers

import (
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RoomController struct {
	Service *services.HotelService
	Rdb     *redis.Client
}

func NewRoomController(service *services.HotelService, rdb *redis.Client) *RoomController {
	return &RoomController{Service: service, Rdb: rdb}
}

// GetAllRooms trả về toàn bộ phòng của khách sạn, có cache Redis
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	cacheKey := "rooms:all"

	var rooms []models.Room
	if err := services.GetFromRedis(config.Ctx, rc.Rdb, cacheKey, &rooms); err != nil || len(rooms) == 0 {
		rooms = rc.Service.ListRooms()

		_ = services.SetToRedis(config.Ctx, rc.Rdb, cacheKey, rooms, 10*time.Minute)
	}

	response.SuccessWithTotal(c, rooms, len(rooms))
}

// GetAvailableRooms trả về các phòng chưa có reservation nào
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms := rc.Service.ListAvailableRooms()
	response.SuccessWithTotal(c, rooms, len(rooms))
}

// AddRoomComment cho admin thêm ghi chú vào phòng
func (rc *RoomController) AddRoomComment(c *gin.Context) {
	var req dto.RoomCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Comment == "" {
		response.BadRequest(c, "Ghi chú không được để trống")
		return
	}

	if err := rc.Service.AddRoomComment(req); err != nil {
		response.NotFound(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, rc.Rdb, "rooms:all")
	response.Success(c, nil)
}

// GetRoomComments cho admin xem ghi chú của toàn bộ phòng
func (rc *RoomController) GetRoomComments(c *gin.Context) {
	comments := rc.Service.ListRoomComments()
	response.Success(c, comments)
}
