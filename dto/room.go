package dto

// RoomCommentRequest là DTO cho request admin thêm ghi chú vào phòng
type RoomCommentRequest struct {
	RoomNumber int    `json:"roomNumber"`
	Comment    string `json:"comment"`
}

// RoomCommentsResponse là ghi chú của một phòng
type RoomCommentsResponse struct {
	RoomNumber int      `json:"roomNumber"`
	Floor      int      `json:"floor"`
	Type       string   `json:"type"`
	Comments   []string `json:"comments"`
}
