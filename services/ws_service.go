package services

import (
	"encoding/json"
	"log"

	"github.com/olahol/melody"
)

// Các event phát qua websocket cho dashboard lễ tân
const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
	EventSchedulerCompleted   = "scheduler.completed"
)

// WsMessage là payload gửi qua websocket
type WsMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// BroadcastEvent phát event tới mọi client websocket đang kết nối.
// Lỗi broadcast chỉ được log, không làm hỏng request gốc.
func BroadcastEvent(m *melody.Melody, event string, data interface{}) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(WsMessage{Event: event, Data: data})
	if err != nil {
		log.Printf("Lỗi khi marshal websocket message: %v", err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast websocket message: %v", err)
	}
}
