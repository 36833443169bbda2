package permissions_test

import (
	"easybooking/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		public bool
	}{
		{name: "room catalog is public", path: "/v1/rooms", method: http.MethodGet, public: true},
		{name: "room availability is public", path: "/v1/rooms/{id}/availability", method: http.MethodGet, public: true},
		{name: "health is public", path: "/health", method: http.MethodGet, public: true},
		{name: "create reservation needs a token", path: "/v1/reservations", method: http.MethodPost, public: false},
		{name: "cancel needs a token", path: "/v1/reservations/{id}/cancel", method: http.MethodPut, public: false},
		{name: "unknown route needs a token", path: "/v1/unknown", method: http.MethodGet, public: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.public, data.IsPublic(tt.path, tt.method))
		})
	}
}

func TestParse_GlobalSkip(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"skip":true,"endpoints":[]}`))
	require.NoError(t, err)

	assert.True(t, data.IsPublic("/v1/reservations", http.MethodPost))
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
