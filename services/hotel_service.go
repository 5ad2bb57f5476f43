package services

import (
	"sync"
	"time"

	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/store"
)

// HotelService giữ ba collection (customers, reservations, rooms) trong
// bộ nhớ và là nguồn sự thật duy nhất về tình trạng phòng. Reservation
// ledger là gốc; danh sách ReservationIDs trên mỗi phòng chỉ là index
// dẫn xuất, được cập nhật qua linkReservation/unlinkReservation.
//
// Mọi mutation đi qua một mutex duy nhất: mỗi thời điểm chỉ một mutation
// đang chạy, vì data model giả định truy cập tuần tự.
type HotelService struct {
	mu sync.Mutex

	customers    []models.Customer
	reservations []models.Reservation
	rooms        []models.Room

	nextCustomerID    int
	nextReservationID int

	store  store.Store
	logger logger.Logger
}

// HotelServiceOptions chứa các dependency của HotelService
type HotelServiceOptions struct {
	Store  store.Store
	Logger logger.Logger
}

// NewHotelService khởi tạo service: dựng lại danh sách phòng cố định
// rồi load dữ liệu đã lưu
func NewHotelService(opts HotelServiceOptions) (*HotelService, error) {
	s := &HotelService{
		nextCustomerID:    1,
		nextReservationID: 1,
		store:             opts.Store,
		logger:            opts.Logger,
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}

	s.initializeRooms()

	if err := s.loadData(); err != nil {
		return nil, err
	}

	return s, nil
}

// initializeRooms dựng danh sách phòng cố định của khách sạn.
// Topology (số phòng, tầng, loại) luôn được dựng lại ở đây,
// không bao giờ tin từ file lưu trữ.
func (s *HotelService) initializeRooms() {
	s.rooms = nil

	// Tầng 1: Single (101-112)
	for i := 101; i <= 112; i++ {
		s.rooms = append(s.rooms, models.Room{RoomNumber: i, Floor: 1, Type: constants.RoomTypeSingle, Price: constants.BaseRateSingle})
	}

	// Tầng 2: Double (201-208)
	for i := 201; i <= 208; i++ {
		s.rooms = append(s.rooms, models.Room{RoomNumber: i, Floor: 2, Type: constants.RoomTypeDouble, Price: constants.BaseRateDouble})
	}

	// Tầng 3: Suite (301-306)
	for i := 301; i <= 306; i++ {
		s.rooms = append(s.rooms, models.Room{RoomNumber: i, Floor: 3, Type: constants.RoomTypeSuite, Price: constants.BaseRateSuite})
	}
}

// loadData load customers, reservations rồi rooms. Với rooms chỉ merge
// comments và reservation id từ storage vào danh sách phòng cố định
// theo số phòng; các bản ghi phòng lạ bị bỏ qua.
func (s *HotelService) loadData() error {
	customers, err := s.store.LoadCustomers()
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStoreError, "Không load được danh sách customer", err)
	}
	s.customers = customers

	reservations, err := s.store.LoadReservations()
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStoreError, "Không load được danh sách reservation", err)
	}
	s.reservations = reservations

	savedRooms, err := s.store.LoadRooms()
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStoreError, "Không load được danh sách phòng", err)
	}

	for _, saved := range savedRooms {
		room := s.findRoom(saved.RoomNumber)
		if room == nil {
			continue
		}
		for _, c := range saved.Comments {
			room.AddComment(c)
		}
		for _, id := range saved.ReservationIDs {
			room.LinkReservation(id)
		}
	}

	// Seed lại các bộ đếm id từ dữ liệu đã load: max(id) + 1
	for i := range s.customers {
		if s.customers[i].ID >= s.nextCustomerID {
			s.nextCustomerID = s.customers[i].ID + 1
		}
	}
	for i := range s.reservations {
		if s.reservations[i].ID >= s.nextReservationID {
			s.nextReservationID = s.reservations[i].ID + 1
		}
	}

	return nil
}

// autoSave ghi snapshot cả ba collection sau mỗi mutation thành công.
// Lỗi ghi chỉ được log, không làm hỏng mutation đã hoàn tất trong bộ nhớ.
func (s *HotelService) autoSave() {
	if err := s.store.SaveCustomers(s.customers); err != nil {
		s.logger.Error("Lỗi khi lưu customers: %v", err)
	}
	if err := s.store.SaveReservations(s.reservations); err != nil {
		s.logger.Error("Lỗi khi lưu reservations: %v", err)
	}
	if err := s.store.SaveRooms(s.rooms); err != nil {
		s.logger.Error("Lỗi khi lưu rooms: %v", err)
	}
}

// ================================================================
// Finders (linear search theo identity)
// ================================================================

func (s *HotelService) findCustomer(id int) *models.Customer {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i]
		}
	}
	return nil
}

func (s *HotelService) findReservation(id int) *models.Reservation {
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			return &s.reservations[i]
		}
	}
	return nil
}

func (s *HotelService) findRoom(roomNumber int) *models.Room {
	for i := range s.rooms {
		if s.rooms[i].RoomNumber == roomNumber {
			return &s.rooms[i]
		}
	}
	return nil
}

// ================================================================
// Customer operations
// ================================================================

// AddCustomer đăng ký customer mới với id tăng dần
func (s *HotelService) AddCustomer(req dto.CustomerRequest) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := models.Customer{
		ID:    s.nextCustomerID,
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	s.nextCustomerID++

	s.customers = append(s.customers, customer)
	s.logger.Info("Đã thêm customer #%d (%s)", customer.ID, customer.Name)
	s.autoSave()

	return customer, nil
}

// UpdateCustomer sửa thông tin customer, field rỗng giữ nguyên giá trị cũ
func (s *HotelService) UpdateCustomer(req dto.UpdateCustomerRequest) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.findCustomer(req.ID)
	if customer == nil {
		return models.Customer{}, errors.NewAppError(errors.ErrCodeCustomerNotFound, "Không tìm thấy customer", errors.ErrCustomerNotFound)
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}

	s.autoSave()
	return *customer, nil
}

// DeleteCustomer xóa customer. Customer còn reservation tham chiếu
// thì không xóa được.
func (s *HotelService) DeleteCustomer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCustomer(id) == nil {
		return errors.NewAppError(errors.ErrCodeCustomerNotFound, "Không tìm thấy customer", errors.ErrCustomerNotFound)
	}

	for i := range s.reservations {
		if s.reservations[i].CustomerID == id {
			return errors.NewAppError(errors.ErrCodeHasDependents, "Customer còn reservation, không thể xóa", errors.ErrHasDependents)
		}
	}

	customers := s.customers[:0]
	for _, c := range s.customers {
		if c.ID != id {
			customers = append(customers, c)
		}
	}
	s.customers = customers

	s.logger.Info("Đã xóa customer #%d", id)
	s.autoSave()
	return nil
}

// ListCustomers trả về bản sao danh sách customer
func (s *HotelService) ListCustomers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// GetCustomerDetail trả về customer kèm toàn bộ reservation của họ
func (s *HotelService) GetCustomerDetail(id int) (dto.CustomerDetailResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.findCustomer(id)
	if customer == nil {
		return dto.CustomerDetailResponse{}, errors.NewAppError(errors.ErrCodeCustomerNotFound, "Không tìm thấy customer", errors.ErrCustomerNotFound)
	}

	detail := dto.CustomerDetailResponse{Customer: *customer}
	for _, r := range s.reservations {
		if r.CustomerID == id {
			detail.Reservations = append(detail.Reservations, r)
		}
	}
	return detail, nil
}

// ================================================================
// Reservation operations
// ================================================================

// linkReservation là mutator duy nhất gắn reservation id vào index
// của phòng khi đặt đơn lẻ
func (s *HotelService) linkReservation(roomNumber, reservationID int) {
	if room := s.findRoom(roomNumber); room != nil {
		room.LinkReservation(reservationID)
	}
}

// unlinkReservation là mutator duy nhất gỡ reservation id khỏi index
// của phòng khi hủy
func (s *HotelService) unlinkReservation(roomNumber, reservationID int) {
	if room := s.findRoom(roomNumber); room != nil {
		room.UnlinkReservation(reservationID)
	}
}

// CreateReservation đặt phòng đơn lẻ theo first-fit: duyệt phòng đúng
// loại theo số phòng tăng dần, chọn phòng đầu tiên không có reservation
// nào giao nhau với khoảng ngày yêu cầu. Không còn phòng trống thì trả
// NO_ROOM_AVAILABLE và không mutation nào xảy ra.
func (s *HotelService) CreateReservation(req dto.CreateReservationRequest) (dto.InvoiceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.findCustomer(req.CustomerID)
	if customer == nil {
		return dto.InvoiceResponse{}, errors.NewAppError(errors.ErrCodeCustomerNotFound, "Không tìm thấy customer", errors.ErrCustomerNotFound)
	}

	if req.CheckOut <= req.CheckIn {
		return dto.InvoiceResponse{}, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", errors.ErrInvalidRange)
	}

	candidate := models.Reservation{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}

	assignedRoom := constants.RoomUnassigned
	assignedFloor := 0

	for i := range s.rooms {
		room := &s.rooms[i]
		if room.Type != req.RoomType {
			continue
		}

		occupied := false
		for j := range s.reservations {
			if s.reservations[j].RoomNumber == room.RoomNumber && s.reservations[j].Overlaps(&candidate) {
				occupied = true
				break
			}
		}

		if !occupied {
			assignedRoom = room.RoomNumber
			assignedFloor = room.Floor
			break
		}
	}

	if assignedRoom == constants.RoomUnassigned {
		return dto.InvoiceResponse{}, errors.NewAppError(errors.ErrCodeNoRoomAvailable, "Không còn phòng trống loại này", errors.ErrNoRoomAvailable)
	}

	nights := CalculateNights(req.CheckIn, req.CheckOut)
	finalPrice, loyalty := ComputeFinalPrice(nights, req.RoomType, customer.TotalBookings)

	reservation := models.Reservation{
		ID:         s.nextReservationID,
		CustomerID: req.CustomerID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		RoomNumber: assignedRoom,
		Floor:      assignedFloor,
		RoomType:   req.RoomType,
		Nights:     nights,
		FinalPrice: finalPrice,
	}
	s.nextReservationID++

	s.reservations = append(s.reservations, reservation)
	s.linkReservation(assignedRoom, reservation.ID)
	customer.IncrementBookings()

	s.logger.Info("Đã đặt phòng %d cho customer #%d (%s -> %s)", assignedRoom, req.CustomerID, req.CheckIn, req.CheckOut)
	s.autoSave()

	return dto.InvoiceResponse{
		ReservationID:  reservation.ID,
		CustomerID:     reservation.CustomerID,
		RoomNumber:     reservation.RoomNumber,
		Floor:          reservation.Floor,
		RoomType:       reservation.RoomType,
		CheckIn:        reservation.CheckIn,
		CheckOut:       reservation.CheckOut,
		Nights:         nights,
		BaseRate:       BaseRateForRoomType(req.RoomType),
		LoyaltyApplied: loyalty,
		FinalPrice:     finalPrice,
	}, nil
}

// CancelReservation xóa hẳn reservation khỏi ledger và gỡ id khỏi index
// của phòng. Không giảm bộ đếm đặt phòng của customer. Hủy id không tồn
// tại trả NOT_FOUND và không mutation nào xảy ra.
func (s *HotelService) CancelReservation(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation := s.findReservation(id)
	if reservation == nil {
		return errors.NewAppError(errors.ErrCodeReservationNotFound, "Không tìm thấy reservation", errors.ErrReservationNotFound)
	}

	s.unlinkReservation(reservation.RoomNumber, id)

	reservations := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ID != id {
			reservations = append(reservations, r)
		}
	}
	s.reservations = reservations

	s.logger.Info("Đã hủy reservation #%d", id)
	s.autoSave()
	return nil
}

// GetReservation tìm reservation theo id
func (s *HotelService) GetReservation(id int) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation := s.findReservation(id)
	if reservation == nil {
		return models.Reservation{}, errors.NewAppError(errors.ErrCodeReservationNotFound, "Không tìm thấy reservation", errors.ErrReservationNotFound)
	}
	return *reservation, nil
}

// ListReservations trả về bản sao toàn bộ reservation ledger
func (s *HotelService) ListReservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// ListPastReservations trả về các reservation đã trả phòng trước hôm nay
func (s *HotelService) ListPastReservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Format(constants.DateLayout)
	var out []models.Reservation
	for _, r := range s.reservations {
		if r.CheckOut < today {
			out = append(out, r)
		}
	}
	return out
}

// ListFutureReservations trả về các reservation nhận phòng sau hôm nay
func (s *HotelService) ListFutureReservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Format(constants.DateLayout)
	var out []models.Reservation
	for _, r := range s.reservations {
		if r.CheckIn > today {
			out = append(out, r)
		}
	}
	return out
}

// OverrideReservationPrice cho admin sửa trực tiếp giá đã lưu của
// reservation; giá mới là giá chính thức, không tính lại
func (s *HotelService) OverrideReservationPrice(req dto.OverridePriceRequest) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation := s.findReservation(req.ReservationID)
	if reservation == nil {
		return models.Reservation{}, errors.NewAppError(errors.ErrCodeReservationNotFound, "Không tìm thấy reservation", errors.ErrReservationNotFound)
	}

	reservation.FinalPrice = req.NewPrice
	s.logger.Info("Admin sửa giá reservation #%d thành %.2f", req.ReservationID, req.NewPrice)
	s.autoSave()
	return *reservation, nil
}

// ================================================================
// Room operations
// ================================================================

// ListRooms trả về bản sao danh sách phòng
func (s *HotelService) ListRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// ListAvailableRooms trả về các phòng không có reservation nào tham chiếu
func (s *HotelService) ListAvailableRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Room
	for _, room := range s.rooms {
		reserved := false
		for _, r := range s.reservations {
			if r.RoomNumber == room.RoomNumber {
				reserved = true
				break
			}
		}
		if !reserved {
			out = append(out, room)
		}
	}
	return out
}

// AddRoomComment thêm ghi chú của admin vào phòng
func (s *HotelService) AddRoomComment(req dto.RoomCommentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.findRoom(req.RoomNumber)
	if room == nil {
		return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
	}

	room.AddComment(req.Comment)
	s.autoSave()
	return nil
}

// ListRoomComments trả về ghi chú của toàn bộ phòng
func (s *HotelService) ListRoomComments() []dto.RoomCommentsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.RoomCommentsResponse, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, dto.RoomCommentsResponse{
			RoomNumber: room.RoomNumber,
			Floor:      room.Floor,
			Type:       room.Type,
			Comments:   room.Comments,
		})
	}
	return out
}

// ================================================================
// Scheduler
// ================================================================

// RunScheduler chạy bulk reallocation trên toàn bộ ledger. Pass này
// không bao giờ thất bại: reservation không xếp được phòng được ghi
// nhận với RoomUnassigned và báo lại trong kết quả.
func (s *HotelService) RunScheduler() dto.ScheduleResultResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	AllocateRooms(s.reservations, s.rooms)

	result := dto.ScheduleResultResponse{Total: len(s.reservations)}
	for _, r := range s.reservations {
		if r.RoomNumber == constants.RoomUnassigned {
			result.Unassigned = append(result.Unassigned, r.ID)
		} else {
			result.Assigned++
		}
	}

	s.logger.Info("Scheduler hoàn tất: %d/%d reservation được xếp phòng", result.Assigned, result.Total)
	s.autoSave()
	return result
}
