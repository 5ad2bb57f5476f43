package routes

import (
	"hms/constants"
	"hms/controllers"
	middlewares "hms/middleware"
	"hms/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes đăng ký toàn bộ route của API. Các thao tác admin
// (sửa giá, ghi chú phòng, xóa customer) đi qua AuthMiddleware với
// role admin; core service không biết gì về authorization.
func SetupRoutes(router *gin.Engine, service *services.HotelService, redisCli *redis.Client, m *melody.Melody) {

	customerController := controllers.NewCustomerController(service, redisCli)
	reservationController := controllers.NewReservationController(service, redisCli, m)
	roomController := controllers.NewRoomController(service, redisCli)
	schedulerController := controllers.NewSchedulerController(service, redisCli, m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)

	v1.GET("/customers", customerController.GetCustomers)
	v1.POST("/customers", customerController.CreateCustomer)
	v1.GET("/customers/search", customerController.SearchCustomers)
	v1.GET("/customers/:id", customerController.GetCustomerByID)
	v1.PUT("/customers", customerController.UpdateCustomer)
	v1.DELETE("/customers/:id", middlewares.AuthMiddleware(constants.RoleAdmin), customerController.DeleteCustomer)

	v1.GET("/reservations", reservationController.GetReservations)
	v1.POST("/reservations", reservationController.CreateReservation)
	v1.GET("/reservations/past", reservationController.GetPastReservations)
	v1.GET("/reservations/future", reservationController.GetFutureReservations)
	v1.GET("/reservations/:id", reservationController.GetReservationDetail)
	v1.DELETE("/reservations/:id", reservationController.CancelReservation)
	v1.PUT("/reservations/price", middlewares.AuthMiddleware(constants.RoleAdmin), reservationController.OverridePrice)

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.POST("/rooms/comment", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.AddRoomComment)
	v1.GET("/rooms/comments", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.GetRoomComments)

	v1.POST("/scheduler/run", middlewares.AuthMiddleware(constants.RoleAdmin), schedulerController.RunScheduler)
}
