package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourbook/internal/domains/booking/model"
	"tourbook/internal/domains/booking/model/dto"
	gModel "tourbook/shared/model"
)

func ptr[T any](v T) *T { return &v }

func TestCreateBookingRequest_DecodeIgnoresServerFields(t *testing.T) {
	body := `{"tour_id":"T1","party_size":2,"user_id":"U2","booking_number":"BK-FAKE","status":"confirmed","id":"x"}`

	var req dto.CreateBookingRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	row, err := req.ToModel("U1", "BK-20260101-000001")

	assert.NoError(t, err)
	assert.Equal(t, "U1", row.UserID)
	assert.Equal(t, "BK-20260101-000001", row.BookingNumber)
	assert.Equal(t, "T1", row.TourID)
	assert.Equal(t, 2, *row.PartySize)
	assert.Empty(t, row.ID)
	assert.Empty(t, row.Status)
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		wantDate *time.Time
		wantErr  bool
	}{
		{
			name: "without date",
			req:  dto.CreateBookingRequest{TourID: "T1"},
		},
		{
			name:     "with date",
			req:      dto.CreateBookingRequest{TourID: "T1", TourDate: ptr("2026-05-01")},
			wantDate: ptr(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "bad date",
			req:     dto.CreateBookingRequest{TourID: "T1", TourDate: ptr("May 1st")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := tt.req.ToModel("U1", "BK-1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDate, row.TourDate)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)

	m := model.Booking{
		ID:            "b-1",
		BookingNumber: "BK-20260101-000001",
		UserID:        "U1",
		TourID:        "T1",
		TourDate:      ptr(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		PartySize:     ptr(2),
		TotalPrice:    ptr(900.0),
		Currency:      ptr("USD"),
		ContactEmail:  ptr("guest@example.com"),
		Status:        "pending",
		Tour: model.Tour{
			TourRefID:       "T1",
			TourTitle:       "Komodo Island Hopping",
			TourDestination: ptr("Labuan Bajo"),
			TourPrice:       450,
			TourCurrency:    "USD",
			TourCreatedAt:   createdAt,
		},
		Metadata: gModel.Metadata{CreatedAt: createdAt},
	}

	var res dto.BookingResponse
	res.FromModel(m)

	out, err := json.Marshal(res)
	assert.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "b-1",
		"booking_number": "BK-20260101-000001",
		"user_id": "U1",
		"tour_id": "T1",
		"tour_date": "2026-05-01",
		"party_size": 2,
		"total_price": 900,
		"currency": "USD",
		"contact_name": null,
		"contact_email": "guest@example.com",
		"contact_phone": null,
		"special_requests": null,
		"status": "pending",
		"created_at": "2026-01-01T09:30:00Z",
		"tour": {
			"id": "T1",
			"title": "Komodo Island Hopping",
			"destination": "Labuan Bajo",
			"duration_days": null,
			"price": 450,
			"currency": "USD",
			"image_url": null,
			"created_at": "2026-01-01T09:30:00Z"
		}
	}`, string(out))
}

func TestFromModels_NeverNil(t *testing.T) {
	res := dto.FromModels(nil)

	assert.NotNil(t, res)
	assert.Empty(t, res)

	out, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
