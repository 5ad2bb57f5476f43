package services

import (
	"testing"

	"hms/constants"
	"hms/models"

	"github.com/stretchr/testify/assert"
)

func testRooms() []models.Room {
	return []models.Room{
		{RoomNumber: 101, Floor: 1, Type: constants.RoomTypeSingle, Price: constants.BaseRateSingle},
		{RoomNumber: 102, Floor: 1, Type: constants.RoomTypeSingle, Price: constants.BaseRateSingle},
		{RoomNumber: 201, Floor: 2, Type: constants.RoomTypeDouble, Price: constants.BaseRateDouble},
	}
}

// assertLinksConsistent kiểm tra index phòng -> reservation khớp đúng
// với các gán phòng trong ledger sau khi chạy pass
func assertLinksConsistent(t *testing.T, reservations []models.Reservation, rooms []models.Room) {
	t.Helper()

	for _, room := range rooms {
		var expected []int
		for _, r := range reservations {
			if r.RoomNumber == room.RoomNumber {
				expected = append(expected, r.ID)
			}
		}
		assert.ElementsMatch(t, expected, room.ReservationIDs,
			"room %d link list không khớp ledger", room.RoomNumber)
	}
}

// assertNoOverlapPerRoom kiểm tra bất biến an toàn: không hai reservation
// nào cùng phòng được giao nhau
func assertNoOverlapPerRoom(t *testing.T, reservations []models.Reservation) {
	t.Helper()

	for i := range reservations {
		for j := i + 1; j < len(reservations); j++ {
			if reservations[i].RoomNumber == constants.RoomUnassigned {
				continue
			}
			if reservations[i].RoomNumber == reservations[j].RoomNumber {
				assert.False(t, reservations[i].Overlaps(&reservations[j]),
					"reservation %d và %d cùng phòng %d nhưng giao nhau",
					reservations[i].ID, reservations[j].ID, reservations[i].RoomNumber)
			}
		}
	}
}

func TestAllocateRoomsFirstFit(t *testing.T) {
	rooms := testRooms()
	reservations := []models.Reservation{
		{ID: 1, CustomerID: 1, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
		{ID: 2, CustomerID: 2, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-02", CheckOut: "2030-01-06"},
	}

	AllocateRooms(reservations, rooms)

	// Khách 1 vào phòng đầu tiên, khách 2 giao nhau nên sang phòng kế
	assert.Equal(t, 101, reservations[0].RoomNumber)
	assert.Equal(t, 102, reservations[1].RoomNumber)
	assertLinksConsistent(t, reservations, rooms)
	assertNoOverlapPerRoom(t, reservations)
}

func TestAllocateRoomsSameDayTurnoverSharesRoom(t *testing.T) {
	rooms := testRooms()
	reservations := []models.Reservation{
		{ID: 1, CustomerID: 1, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-03"},
		{ID: 2, CustomerID: 2, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-03", CheckOut: "2030-01-05"},
	}

	AllocateRooms(reservations, rooms)

	// Trả và nhận phòng cùng ngày: first-fit dồn cả hai vào phòng 101
	assert.Equal(t, 101, reservations[0].RoomNumber)
	assert.Equal(t, 101, reservations[1].RoomNumber)
	assertLinksConsistent(t, reservations, rooms)
}

func TestAllocateRoomsOverbookedMarksUnassigned(t *testing.T) {
	rooms := testRooms()
	// Ba reservation Single cùng khoảng ngày nhưng chỉ có hai phòng Single
	reservations := []models.Reservation{
		{ID: 1, CustomerID: 1, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
		{ID: 2, CustomerID: 2, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
		{ID: 3, CustomerID: 3, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
	}

	AllocateRooms(reservations, rooms)

	unassigned := 0
	for _, r := range reservations {
		if r.RoomNumber == constants.RoomUnassigned {
			unassigned++
		}
	}
	assert.Equal(t, 1, unassigned, "reservation thừa phải mang sentinel, không làm pass thất bại")
	assertLinksConsistent(t, reservations, rooms)
	assertNoOverlapPerRoom(t, reservations)
}

func TestAllocateRoomsDeterministicOrder(t *testing.T) {
	rooms := testRooms()
	// Đưa vào theo thứ tự lộn xộn: pass phải sort theo
	// (customerId, checkIn) trước khi gán
	reservations := []models.Reservation{
		{ID: 1, CustomerID: 5, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
		{ID: 2, CustomerID: 1, RoomType: constants.RoomTypeSingle, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
	}

	AllocateRooms(reservations, rooms)

	// Sau sort, customer 1 đứng trước nên nhận phòng 101
	assert.Equal(t, 1, reservations[0].CustomerID)
	assert.Equal(t, 101, reservations[0].RoomNumber)
	assert.Equal(t, 102, reservations[1].RoomNumber)
}

func TestAllocateRoomsClearsStaleLinks(t *testing.T) {
	rooms := testRooms()
	// Index phòng chứa id mồ côi từ lần chạy trước
	rooms[0].LinkReservation(99)

	reservations := []models.Reservation{
		{ID: 1, CustomerID: 1, RoomType: constants.RoomTypeDouble, CheckIn: "2030-01-01", CheckOut: "2030-01-05"},
	}

	AllocateRooms(reservations, rooms)

	assert.Empty(t, rooms[0].ReservationIDs, "pass phải xóa sạch index cũ")
	assert.Equal(t, []int{1}, rooms[2].ReservationIDs)
}
