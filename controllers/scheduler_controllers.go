package controllers

import (
	"hms/config"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

type SchedulerController struct {
	Service *services.HotelService
	Rdb     *redis.Client
	Ws      *melody.Melody
}

func NewSchedulerController(service *services.HotelService, rdb *redis.Client, m *melody.Melody) *SchedulerController {
	return &SchedulerController{Service: service, Rdb: rdb, Ws: m}
}

// RunScheduler chạy bulk reallocation cho toàn bộ reservation ledger.
// Kết quả liệt kê các reservation không xếp được phòng.
func (sc *SchedulerController) RunScheduler(c *gin.Context) {
	result := sc.Service.RunScheduler()

	_ = services.DeleteFromRedis(config.Ctx, sc.Rdb,
		"reservations:all", "rooms:all", "rooms:available")
	services.BroadcastEvent(sc.Ws, services.EventSchedulerCompleted, result)

	response.Success(c, result)
}
