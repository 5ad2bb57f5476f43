package models

// Room là một phòng trong khách sạn. Danh sách phòng là cố định,
// được khởi tạo lúc startup và không bao giờ thêm/xóa lúc runtime.
type Room struct {
	RoomNumber int     `json:"roomNumber" gorm:"primaryKey"`
	Floor      int     `json:"floor"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	// ReservationIDs là index dẫn xuất từ reservation ledger, chỉ được
	// cập nhật qua LinkReservation/UnlinkReservation/ClearReservations
	ReservationIDs []int    `json:"reservationIds" gorm:"serializer:json"`
	Comments       []string `json:"comments" gorm:"serializer:json"`
}

// LinkReservation gắn một reservation id vào phòng
func (r *Room) LinkReservation(reservationID int) {
	r.ReservationIDs = append(r.ReservationIDs, reservationID)
}

// UnlinkReservation gỡ một reservation id khỏi phòng
func (r *Room) UnlinkReservation(reservationID int) {
	ids := r.ReservationIDs[:0]
	for _, id := range r.ReservationIDs {
		if id != reservationID {
			ids = append(ids, id)
		}
	}
	r.ReservationIDs = ids
}

// ClearReservations xóa toàn bộ danh sách reservation id của phòng
func (r *Room) ClearReservations() {
	r.ReservationIDs = nil
}

// AddComment thêm ghi chú của admin vào phòng
func (r *Room) AddComment(comment string) {
	r.Comments = append(r.Comments, comment)
}
