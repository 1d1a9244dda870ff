package model

import (
	"time"

	bookingDto "tourbook/internal/domains/booking/model/dto"
)

// BookingConfirmation is the event published when a booking is created. It carries
// the full booking with its tour so the consumer needs no further lookups.
type BookingConfirmation struct {
	EventID       string                     `json:"event_id"       validate:"required"`
	Type          string                     `json:"type"           validate:"required"`
	OccurredAt    time.Time                  `json:"occurred_at"`
	BookingNumber string                     `json:"booking_number" validate:"required"`
	Recipient     string                     `json:"recipient"      validate:"required,email"`
	Booking       bookingDto.BookingResponse `json:"booking"`
}
