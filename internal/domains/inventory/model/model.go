package model

import (
	"time"

	"backoffice/shared/model"
)

const (
	TableName  = "room_inventories"
	EntityName = "inventory"

	FieldID             = "id"
	FieldRoomTypeID     = "room_type_id"
	FieldDate           = "date"
	FieldAvailableRooms = "available_rooms"
	FieldBookedRooms    = "booked_rooms"
	FieldPricePerNight  = "price_per_night"
)

// Inventory is one day of the availability ledger for a room type.
type Inventory struct {
	ID             string    `db:"id"`
	RoomTypeID     string    `db:"room_type_id"`
	Date           time.Time `db:"date"`
	AvailableRooms int       `db:"available_rooms"`
	BookedRooms    int       `db:"booked_rooms"`
	PricePerNight  float64   `db:"price_per_night"`
	model.Metadata
}
