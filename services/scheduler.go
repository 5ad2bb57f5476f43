package services

import (
	"sort"

	"hms/constants"
	"hms/models"
)

// roomIsFreeFor kiểm tra phòng có nhận được reservation này không:
// không reservation nào đang gắn vào phòng (trong pass hiện tại)
// được giao nhau với nó
func roomIsFreeFor(room *models.Room, res *models.Reservation, reservations []models.Reservation) bool {
	for _, linkedID := range room.ReservationIDs {
		for i := range reservations {
			if reservations[i].ID == linkedID && reservations[i].Overlaps(res) {
				return false
			}
		}
	}
	return true
}

// AllocateRooms chạy bulk reallocation: xếp lại phòng cho toàn bộ
// reservation ledger từ đầu, bỏ qua các gán phòng cũ.
//
// Thuật toán là greedy first-fit: duyệt reservation theo thứ tự
// (customerId tăng dần, checkIn tăng dần) và gán vào phòng đầu tiên
// cùng loại còn trống cho cả khoảng ngày. First-fit không đảm bảo tìm
// được cách xếp khả thi toàn cục ngay cả khi tồn tại — đây là giới hạn
// chấp nhận được, reservation không xếp được sẽ mang RoomUnassigned
// thay vì làm pass thất bại.
func AllocateRooms(reservations []models.Reservation, rooms []models.Room) {
	sort.SliceStable(reservations, func(i, j int) bool {
		if reservations[i].CustomerID == reservations[j].CustomerID {
			return reservations[i].CheckIn < reservations[j].CheckIn
		}
		return reservations[i].CustomerID < reservations[j].CustomerID
	})

	// Xóa toàn bộ index phòng -> reservation trước khi gán lại
	for i := range rooms {
		rooms[i].ClearReservations()
	}

	for i := range reservations {
		res := &reservations[i]
		placed := false

		// rooms đã theo thứ tự số phòng tăng dần từ lúc khởi tạo
		for j := range rooms {
			room := &rooms[j]

			if room.Type != res.RoomType {
				continue
			}

			if roomIsFreeFor(room, res, reservations) {
				res.RoomNumber = room.RoomNumber
				res.Floor = room.Floor
				room.LinkReservation(res.ID)
				placed = true
				break
			}
		}

		if !placed {
			res.RoomNumber = constants.RoomUnassigned
		}
	}
}
