package config_test

import (
	"easybooking/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	cfg := config.Get()

	assert.NotNil(t, cfg)
	assert.Equal(t, "confirmed", cfg.Reservation.DefaultStatus)
	assert.Equal(t, 5000, cfg.Reservation.StoreTimeoutMs)
	assert.Equal(t, "@every 1m", cfg.Reservation.Sweep.Schedule)
	assert.Equal(t, "easybooking", cfg.Metrics.Namespace)
	assert.Same(t, cfg, config.Get())
}
