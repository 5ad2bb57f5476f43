package store

import "hms/models"

// Store là ranh giới persistence: snapshot/restore toàn bộ từng collection
// theo loại entity. Ghi đè toàn bộ collection sau mỗi mutation, không ghi
// tăng dần.
type Store interface {
	LoadCustomers() ([]models.Customer, error)
	LoadReservations() ([]models.Reservation, error)
	LoadRooms() ([]models.Room, error)

	SaveCustomers(customers []models.Customer) error
	SaveReservations(reservations []models.Reservation) error
	SaveRooms(rooms []models.Room) error
}
