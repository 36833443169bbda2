package otel_test

import (
	"context"
	"easybooking/config"
	"easybooking/infras/otel"
	"easybooking/infras/otel/mocks"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "easybooking-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"room_id":    "room-1",
		"party_size": 2,
		"active":     true,
		"tags":       []string{"a", "b"},
		"ratio":      0.5,
		"start":      time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		"timeout":    5 * time.Second,
		"cause":      errors.New("slot taken"),
	})
	scope.AddEvent("created")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()
}

func TestRecorder_KeepsScopes(t *testing.T) {
	recorder := mocks.NewRecorder()

	_, first := recorder.NewScope(context.Background(), "service", "service.Create")
	first.SetAttribute("room.id", "room-1")
	first.TraceIfError(nil)
	first.End()

	_, second := recorder.NewScope(context.Background(), "service", "service.Create")
	second.TraceIfError(errors.New("slot taken"))

	scope := recorder.Scope("service.Create")
	assert.Same(t, second, scope)
	assert.False(t, scope.Ended())
	assert.Len(t, scope.Errors(), 1)

	_, ok := scope.Attribute("room.id")
	assert.False(t, ok)

	assert.Nil(t, recorder.Scope("service.Cancel"))
}
