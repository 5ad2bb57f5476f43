package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hms/models"
)

const (
	customersFile    = "customers.json"
	reservationsFile = "reservations.json"
	roomsFile        = "rooms.json"
)

// JSONStore lưu từng collection vào một file JSON riêng trong dir.
// Ghi file theo kiểu write-temp-then-rename để file cũ không bao giờ
// bị cắt cụt nếu process chết giữa chừng.
type JSONStore struct {
	dir string
}

// NewJSONStore tạo JSONStore, tạo thư mục dữ liệu nếu chưa tồn tại
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("không tạo được thư mục dữ liệu %s: %w", dir, err)
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) readFile(name string, target interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		// Chưa có file thì coi như collection rỗng
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (s *JSONStore) writeFile(name string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *JSONStore) LoadCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.readFile(customersFile, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *JSONStore) LoadReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.readFile(reservationsFile, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *JSONStore) LoadRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.readFile(roomsFile, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *JSONStore) SaveCustomers(customers []models.Customer) error {
	return s.writeFile(customersFile, customers)
}

func (s *JSONStore) SaveReservations(reservations []models.Reservation) error {
	return s.writeFile(reservationsFile, reservations)
}

func (s *JSONStore) SaveRooms(rooms []models.Room) error {
	return s.writeFile(roomsFile, rooms)
}
