package model

import (
	"backoffice/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldName       = "name"
	FieldCapacity   = "capacity"
	FieldTotalRooms = "total_rooms"
	FieldBasePrice  = "base_price"
)

type RoomType struct {
	ID          string  `db:"id"`
	HotelID     string  `db:"hotel_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Capacity    int     `db:"capacity"`
	TotalRooms  int     `db:"total_rooms"`
	BasePrice   float64 `db:"base_price"`
	model.Metadata
}
