package store

import (
	"hms/models"

	"gorm.io/gorm"
)

// GormStore lưu snapshot vào database qua gorm. Mỗi lần save xóa toàn bộ
// bảng rồi ghi lại collection trong một transaction, tương đương việc
// thay thế nguyên file một cách nguyên tử.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore tạo GormStore và migrate các bảng
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Customer{}, &models.Reservation{}, &models.Room{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) replaceAll(model interface{}, records interface{}, count int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		return tx.Create(records).Error
	})
}

func (s *GormStore) LoadCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *GormStore) LoadReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) LoadRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormStore) SaveCustomers(customers []models.Customer) error {
	return s.replaceAll(&models.Customer{}, customers, len(customers))
}

func (s *GormStore) SaveReservations(reservations []models.Reservation) error {
	return s.replaceAll(&models.Reservation{}, reservations, len(reservations))
}

func (s *GormStore) SaveRooms(rooms []models.Room) error {
	return s.replaceAll(&models.Room{}, rooms, len(rooms))
}
