package dto_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domains/booking/model"
	"backoffice/internal/domains/booking/model/dto"
	"backoffice/shared/validator"
)

func TestNewBookingReference(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	reference := dto.NewBookingReference(now)

	assert.Regexp(t, regexp.MustCompile(`^BK-20260901-[0-9A-F]{8}$`), reference)
	assert.NotEqual(t, reference, dto.NewBookingReference(now))
}

func TestCreateBookingRequestGuestCount(t *testing.T) {
	tests := []struct {
		name    string
		guests  int
		wantErr bool
	}{
		{name: "one guest accepted", guests: 1, wantErr: false},
		{name: "ten guests accepted", guests: 10, wantErr: false},
		{name: "zero guests rejected", guests: 0, wantErr: true},
		{name: "eleven guests rejected", guests: 11, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				RoomTypeID:     "3fa85f64-5717-4562-b3fc-2c963f66afa6",
				CheckIn:        "2026-09-01",
				CheckOut:       "2026-09-04",
				GuestName:      "Jane Doe",
				NumberOfGuests: test.guests,
				TotalPrice:     450,
			}

			err := validator.ValidateStruct(&req)

			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingRequestToModel(t *testing.T) {
	t.Run("defaults status to confirmed", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			RoomTypeID:     "rt-1",
			CheckIn:        "2026-09-01",
			CheckOut:       "2026-09-04",
			GuestName:      "Jane Doe",
			NumberOfGuests: 2,
			TotalPrice:     450,
		}

		booking, err := req.ToModel("user-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.NotEmpty(t, booking.ID)
		assert.NotEmpty(t, booking.BookingReference)
		assert.Equal(t, "2026-09-01", booking.CheckIn.Format("2006-01-02"))
		assert.Equal(t, "user-1", booking.CreatedBy)
	})

	t.Run("keeps explicit pending status", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			RoomTypeID: "rt-1",
			CheckIn:    "2026-09-01",
			CheckOut:   "2026-09-04",
			GuestName:  "Jane Doe",
			Status:     model.StatusPending,
		}

		booking, err := req.ToModel("user-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, booking.Status)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			RoomTypeID: "rt-1",
			CheckIn:    "September 1st",
			CheckOut:   "2026-09-04",
			GuestName:  "Jane Doe",
		}

		_, err := req.ToModel("user-1")

		assert.Error(t, err)
	})
}
