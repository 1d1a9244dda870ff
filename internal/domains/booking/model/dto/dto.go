package dto

import (
	"fmt"
	"time"

	"tourbook/internal/domains/booking/model"
	"tourbook/shared/constant"
	"tourbook/shared/timezone"
)

// CreateBookingRequest lists the fields a caller may write. Anything else in the
// body, user_id and booking_number included, is dropped during decoding.
type CreateBookingRequest struct {
	TourID          string   `json:"tour_id"`
	TourDate        *string  `json:"tour_date"        validate:"omitempty,datetime=2006-01-02"`
	PartySize       *int     `json:"party_size"`
	TotalPrice      *float64 `json:"total_price"`
	Currency        *string  `json:"currency"`
	ContactName     *string  `json:"contact_name"`
	ContactEmail    *string  `json:"contact_email"`
	ContactPhone    *string  `json:"contact_phone"`
	SpecialRequests *string  `json:"special_requests"`
}

// ToModel builds the row to insert for userID under bookingNumber.
func (c *CreateBookingRequest) ToModel(userID, bookingNumber string) (model.Booking, error) {
	var tourDate *time.Time

	if c.TourDate != nil {
		parsed, err := time.Parse(constant.DateOnlyFormat, *c.TourDate)
		if err != nil {
			return model.Booking{}, fmt.Errorf("invalid tour_date: %w", err)
		}

		tourDate = &parsed
	}

	return model.Booking{
		BookingNumber:   bookingNumber,
		UserID:          userID,
		TourID:          c.TourID,
		TourDate:        tourDate,
		PartySize:       c.PartySize,
		TotalPrice:      c.TotalPrice,
		Currency:        c.Currency,
		ContactName:     c.ContactName,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		SpecialRequests: c.SpecialRequests,
	}, nil
}

type TourResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Destination  *string `json:"destination"`
	DurationDays *int    `json:"duration_days"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	ImageURL     *string `json:"image_url"`
	CreatedAt    string  `json:"created_at"`
}

type BookingResponse struct {
	ID              string       `json:"id"`
	BookingNumber   string       `json:"booking_number"`
	UserID          string       `json:"user_id"`
	TourID          string       `json:"tour_id"`
	TourDate        *string      `json:"tour_date"`
	PartySize       *int         `json:"party_size"`
	TotalPrice      *float64     `json:"total_price"`
	Currency        *string      `json:"currency"`
	ContactName     *string      `json:"contact_name"`
	ContactEmail    *string      `json:"contact_email"`
	ContactPhone    *string      `json:"contact_phone"`
	SpecialRequests *string      `json:"special_requests"`
	Status          string       `json:"status"`
	CreatedAt       string       `json:"created_at"`
	Tour            TourResponse `json:"tour"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.BookingNumber = m.BookingNumber
	r.UserID = m.UserID
	r.TourID = m.TourID
	r.PartySize = m.PartySize
	r.TotalPrice = m.TotalPrice
	r.Currency = m.Currency
	r.ContactName = m.ContactName
	r.ContactEmail = m.ContactEmail
	r.ContactPhone = m.ContactPhone
	r.SpecialRequests = m.SpecialRequests
	r.Status = m.Status
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)

	r.TourDate = nil
	if m.TourDate != nil {
		// a calendar date, not an instant: no timezone conversion
		date := m.TourDate.Format(constant.DateOnlyFormat)
		r.TourDate = &date
	}

	r.Tour = TourResponse{
		ID:           m.TourRefID,
		Title:        m.TourTitle,
		Destination:  m.TourDestination,
		DurationDays: m.TourDurationDays,
		Price:        m.TourPrice,
		Currency:     m.TourCurrency,
		ImageURL:     m.TourImageURL,
		CreatedAt:    timezone.Format(m.TourCreatedAt, constant.DateFormat),
	}
}

// FromModels converts rows to responses. The result is never nil so an empty
// listing encodes as [].
func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
