package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easybooking/config"
	"easybooking/infras/jwt"
	"easybooking/infras/otel/mocks"
	"easybooking/permissions"
	"easybooking/shared/constant"
	"easybooking/transport/http/middleware"
)

func newAuthRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	auth := middleware.NewAuthMiddleware(jwt.New(cfg), mocks.NewOtel(), permissions.Get())

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(userID))
	}

	router := chi.NewRouter()
	router.Use(auth.Auth)
	router.Get("/v1/rooms/{id}", echoUser)
	router.Get("/v1/reservations/{id}", echoUser)

	return router
}

func TestAuth_Auth(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = 5

	token, err := jwt.New(cfg).GenerateToken("alice")
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.JWT.AccessSecret = "other-secret"
	otherCfg.JWT.AccessExpireMin = 5

	forged, err := jwt.New(otherCfg).GenerateToken("mallory")
	require.NoError(t, err)

	router := newAuthRouter(t, cfg)

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public route without token",
			target:     "/v1/rooms/r1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "protected route without token",
			target:     "/v1/reservations/res-1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			target:     "/v1/reservations/res-1",
			header:     "Token " + token.AccessToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token signed with another secret",
			target:     "/v1/reservations/res-1",
			header:     "Bearer " + forged.AccessToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			target:     "/v1/reservations/res-1",
			header:     "Bearer " + token.AccessToken,
			wantStatus: http.StatusOK,
			wantBody:   "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
