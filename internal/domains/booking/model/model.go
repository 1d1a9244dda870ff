package model

import (
	"time"

	"tourbook/shared/model"
)

const (
	TableName     = "bookings"
	TourTableName = "tours"
	EntityName    = "booking"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldTourID    = "tour_id"
	FieldCreatedAt = "created_at"

	FunctionGenerateBookingNumber = "generate_booking_number"
)

// Booking is a bookings row read back together with its tour.
type Booking struct {
	ID              string     `db:"id" generated:"true"`
	BookingNumber   string     `db:"booking_number"`
	UserID          string     `db:"user_id"`
	TourID          string     `db:"tour_id"`
	TourDate        *time.Time `db:"tour_date"`
	PartySize       *int       `db:"party_size"`
	TotalPrice      *float64   `db:"total_price"`
	Currency        *string    `db:"currency"`
	ContactName     *string    `db:"contact_name"`
	ContactEmail    *string    `db:"contact_email"`
	ContactPhone    *string    `db:"contact_phone"`
	SpecialRequests *string    `db:"special_requests"`
	Status          string     `db:"status" generated:"true"`
	Tour
	model.Metadata
}

// Tour is the joined tours row, selected with a tour_ prefix so it cannot collide
// with bookings columns.
type Tour struct {
	TourRefID        string    `db:"tour_ref_id"        table:"tours" column:"id"`
	TourTitle        string    `db:"tour_title"         table:"tours" column:"title"`
	TourDestination  *string   `db:"tour_destination"   table:"tours" column:"destination"`
	TourDurationDays *int      `db:"tour_duration_days" table:"tours" column:"duration_days"`
	TourPrice        float64   `db:"tour_price"         table:"tours" column:"price"`
	TourCurrency     string    `db:"tour_currency"      table:"tours" column:"currency"`
	TourImageURL     *string   `db:"tour_image_url"     table:"tours" column:"image_url"`
	TourCreatedAt    time.Time `db:"tour_created_at"    table:"tours" column:"created_at"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN tours ON tours.id = bookings.tour_id"
}
