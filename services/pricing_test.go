package services

import (
	"testing"

	"hms/constants"

	"github.com/stretchr/testify/assert"
)

func TestBaseRateForRoomType(t *testing.T) {
	assert.Equal(t, 150.0, BaseRateForRoomType(constants.RoomTypeSingle))
	assert.Equal(t, 220.0, BaseRateForRoomType(constants.RoomTypeDouble))
	assert.Equal(t, 450.0, BaseRateForRoomType(constants.RoomTypeSuite))
	assert.Equal(t, 0.0, BaseRateForRoomType("Penthouse"))
}

func TestCalculateNights(t *testing.T) {
	assert.Equal(t, 2, CalculateNights("2030-01-01", "2030-01-03"))
	assert.Equal(t, 1, CalculateNights("2030-01-31", "2030-02-01"))

	// 2028 là năm nhuận: 28/2 -> 1/3 là 2 đêm
	assert.Equal(t, 2, CalculateNights("2028-02-28", "2028-03-01"))
	// 2029 không nhuận: 28/2 -> 1/3 chỉ 1 đêm
	assert.Equal(t, 1, CalculateNights("2029-02-28", "2029-03-01"))
}

func TestComputeFinalPrice(t *testing.T) {
	// Dưới ngưỡng loyalty: giá đầy đủ
	price, loyalty := ComputeFinalPrice(2, constants.RoomTypeSingle, 2)
	assert.Equal(t, 300.0, price)
	assert.False(t, loyalty)

	// Đạt ngưỡng 3 lần đặt trước đó: giảm 10%
	price, loyalty = ComputeFinalPrice(2, constants.RoomTypeSingle, 3)
	assert.InDelta(t, 270.0, price, 0.001)
	assert.True(t, loyalty)

	price, loyalty = ComputeFinalPrice(3, constants.RoomTypeSuite, 10)
	assert.InDelta(t, 1215.0, price, 0.001)
	assert.True(t, loyalty)
}
