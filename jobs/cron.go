package jobs

import (
	"log"

	"hms/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs. Bulk reallocation chạy lúc 3h
// sáng mỗi ngày để sửa lại các gán phòng sau những chỉnh sửa tay
// trong ngày.
func InitCronJobs(c *cron.Cron, m *melody.Melody, service *services.HotelService) error {
	_, err := c.AddFunc("0 3 * * *", func() {
		log.Println("Đang chạy bulk reallocation định kỳ")

		result := service.RunScheduler()
		if len(result.Unassigned) > 0 {
			log.Printf("Cảnh báo: %d reservation không xếp được phòng: %v", len(result.Unassigned), result.Unassigned)
		}

		services.BroadcastEvent(m, services.EventSchedulerCompleted, result)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
