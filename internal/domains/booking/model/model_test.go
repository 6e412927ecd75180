package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to checked_in", from: model.StatusPending, to: model.StatusCheckedIn, want: false},
		{name: "confirmed to checked_in", from: model.StatusConfirmed, to: model.StatusCheckedIn, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to no_show", from: model.StatusConfirmed, to: model.StatusNoShow, want: true},
		{name: "confirmed to checked_out", from: model.StatusConfirmed, to: model.StatusCheckedOut, want: false},
		{name: "checked_in to checked_out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{name: "checked_in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, want: false},
		{name: "checked_out is terminal", from: model.StatusCheckedOut, to: model.StatusConfirmed, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "no_show is terminal", from: model.StatusNoShow, to: model.StatusConfirmed, want: false},
		{name: "same status is a no-op", from: model.StatusConfirmed, to: model.StatusConfirmed, want: false},
		{name: "unknown status", from: "unknown", to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestHoldsRooms(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: model.StatusPending, want: true},
		{status: model.StatusConfirmed, want: true},
		{status: model.StatusCheckedIn, want: true},
		{status: model.StatusCheckedOut, want: true},
		{status: model.StatusCancelled, want: false},
		{status: model.StatusNoShow, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}
			assert.Equal(t, tt.want, booking.HoldsRooms())
		})
	}
}
