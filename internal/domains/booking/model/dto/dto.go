package dto

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domains/booking/model"
	"backoffice/shared"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
)

const referenceSuffixLength = 8

// NewBookingReference builds a human-readable unique reference such as
// BK-20260829-3FA85F64.
func NewBookingReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:referenceSuffixLength]

	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), suffix)
}

type CreateBookingRequest struct {
	RoomTypeID     string  `json:"room_type_id"     validate:"required,uuid"`
	CheckIn        string  `json:"check_in"         validate:"required"`
	CheckOut       string  `json:"check_out"        validate:"required"`
	GuestName      string  `json:"guest_name"       validate:"required,max=200"`
	GuestEmail     string  `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone     string  `json:"guest_phone"      validate:"omitempty,max=20"`
	NumberOfGuests int     `json:"number_of_guests" validate:"required,gte=1,lte=10"`
	TotalPrice     float64 `json:"total_price"      validate:"gte=0"`
	Status         string  `json:"status"           validate:"omitempty,oneof=pending confirmed"`
	Notes          string  `json:"notes"            validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	now := timezone.Now()

	return model.Booking{
		ID:               uuid.NewString(),
		BookingReference: NewBookingReference(now),
		RoomTypeID:       c.RoomTypeID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		GuestName:        c.GuestName,
		GuestEmail:       c.GuestEmail,
		GuestPhone:       c.GuestPhone,
		NumberOfGuests:   c.NumberOfGuests,
		TotalPrice:       c.TotalPrice,
		Status:           status,
		Notes:            c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest covers the guest contact fields only; stay dates and
// price are fixed once booked, and status moves through its own endpoint.
type UpdateBookingRequest struct {
	GuestName  string `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=200"`
	GuestEmail string `db:"guest_email" json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=20"`
	Notes      string `db:"notes"       json:"notes"       validate:"omitempty,max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled no_show"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	BookingReference string  `json:"booking_reference"`
	RoomTypeID       string  `json:"room_type_id"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	GuestName        string  `json:"guest_name"`
	GuestEmail       string  `json:"guest_email"`
	GuestPhone       string  `json:"guest_phone"`
	NumberOfGuests   int     `json:"number_of_guests"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"`
	Notes            string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.RoomTypeID = model.RoomTypeID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.NumberOfGuests = model.NumberOfGuests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type OccupancyDay struct {
	Date          string `json:"date"`
	OccupiedRooms int    `json:"occupied_rooms"`
}

type OccupancyResponse struct {
	HotelID   string         `json:"hotel_id"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Days      []OccupancyDay `json:"days"`
}

type RevenueResponse struct {
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// BookingEvent is the payload published to Kafka on booking lifecycle changes.
type BookingEvent struct {
	BookingID        string `json:"booking_id"`
	BookingReference string `json:"booking_reference"`
	RoomTypeID       string `json:"room_type_id"`
	Status           string `json:"status"`
	OccurredAt       string `json:"occurred_at"`
}

func NewBookingEvent(booking model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		RoomTypeID:       booking.RoomTypeID,
		Status:           booking.Status,
		OccurredAt:       timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
