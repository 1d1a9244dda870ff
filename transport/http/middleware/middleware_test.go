package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourbook/config"
	otelMocks "tourbook/infras/otel/mocks"
	identityMocks "tourbook/internal/domains/identity/mocks"
	identityModel "tourbook/internal/domains/identity/model"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/transport/http/middleware"
)

func TestAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := identityMocks.NewMockIdentity(ctrl)
	auth := middleware.NewAuthMiddleware(identity, otelMocks.NewOtel())

	tests := []struct {
		name       string
		header     string
		setupMock  func()
		wantCode   int
		wantCalled bool
	}{
		{
			name:   "valid token reaches the handler",
			header: "Bearer good",
			setupMock: func() {
				identity.EXPECT().CurrentUser(gomock.Any(), "Bearer good").
					Return(identityModel.User{ID: "U1", Email: "u1@example.com"}, nil)
			},
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:   "rejected token stops the chain",
			header: "Bearer revoked",
			setupMock: func() {
				identity.EXPECT().CurrentUser(gomock.Any(), "Bearer revoked").Return(identityModel.User{}, failure.ErrUnauthorized)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "untyped identity error is still 401",
			setupMock: func() {
				identity.EXPECT().CurrentUser(gomock.Any(), "").Return(identityModel.User{}, assert.AnError)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true

				assert.Equal(t, "U1", r.Context().Value(constant.ContextKeyUserID))
				assert.Equal(t, "u1@example.com", r.Context().Value(constant.ContextKeyUserEmail))

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)

			if !tt.wantCalled {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestAppMiddleware_CORS(t *testing.T) {
	tests := []struct {
		name       string
		enable     bool
		wantOrigin string
	}{
		{name: "enabled", enable: true, wantOrigin: "https://app.example.com"},
		{name: "disabled", enable: false, wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.CORS.Enable = tt.enable
			cfg.App.CORS.AllowedOrigins = []string{"https://app.example.com"}
			cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg)

			handler := app.CORS()(app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.Header.Set("Origin", "https://app.example.com")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
