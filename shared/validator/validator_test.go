package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourbook/shared/failure"
	"tourbook/shared/validator"
)

type contact struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Guests    int     `json:"guests" validate:"min=1"`
	VisitDate *string `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	Note      string  `json:"-"`
}

func TestValidateStruct(t *testing.T) {
	date := "2026-05-01"
	badDate := "01/05/2026"

	tests := []struct {
		name    string
		data    contact
		wantErr string
	}{
		{
			name: "valid struct",
			data: contact{Name: "Ada", Email: "ada@example.com", Guests: 2, VisitDate: &date},
		},
		{
			name:    "missing required field reports json name",
			data:    contact{Email: "ada@example.com", Guests: 2},
			wantErr: "name is required",
		},
		{
			name:    "invalid email",
			data:    contact{Name: "Ada", Email: "ada", Guests: 2},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "below minimum",
			data:    contact{Name: "Ada", Email: "ada@example.com", Guests: 0},
			wantErr: "guests must be greater than or equal to 1",
		},
		{
			name:    "bad date format",
			data:    contact{Name: "Ada", Email: "ada@example.com", Guests: 1, VisitDate: &badDate},
			wantErr: "visit_date must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantPrefix string
	}{
		{
			name: "valid body",
			body: `{"name":"Ada","email":"ada@example.com","guests":3}`,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantErr:    true,
			wantPrefix: "failed to decode request body",
		},
		{
			name:       "wrong type",
			body:       `{"name":"Ada","email":"ada@example.com","guests":"three"}`,
			wantErr:    true,
			wantPrefix: "failed to decode request body",
		},
		{
			name:       "rule violation",
			body:       `{"name":"Ada","email":"nope","guests":3}`,
			wantErr:    true,
			wantPrefix: "email must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data contact
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Equal(t, "Ada", data.Name)
				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantPrefix), err.Error())
		})
	}
}
