package model

import (
	"time"

	"backoffice/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldRoomTypeID       = "room_type_id"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldStatus           = "status"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// transitions is the allowed status state machine. Statuses without an
// entry are terminal.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Booking struct {
	ID               string    `db:"id"`
	BookingReference string    `db:"booking_reference"`
	RoomTypeID       string    `db:"room_type_id"`
	CheckIn          time.Time `db:"check_in"`
	CheckOut         time.Time `db:"check_out"`
	GuestName        string    `db:"guest_name"`
	GuestEmail       string    `db:"guest_email"`
	GuestPhone       string    `db:"guest_phone"`
	NumberOfGuests   int       `db:"number_of_guests"`
	TotalPrice       float64   `db:"total_price"`
	Status           string    `db:"status"`
	Notes            string    `db:"notes"`
	model.Metadata
}

// HoldsRooms reports whether the booking currently occupies ledger rooms.
// Cancelled and no-show bookings have released their nights already;
// checked-out stays are kept on the ledger as history.
func (b *Booking) HoldsRooms() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}
