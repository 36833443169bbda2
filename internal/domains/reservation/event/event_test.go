package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"easybooking/config"
	"easybooking/infras/kafka"
	kafkaMocks "easybooking/infras/kafka/mocks"
	"easybooking/infras/otel/mocks"
	"easybooking/internal/domains/reservation/event"
	"easybooking/internal/domains/reservation/model"
)

func TestNew(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	reservation := model.Reservation{
		ID:        "res-1",
		UserID:    "u1",
		RoomID:    "room-a",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    model.StatusConfirmed,
		PartySize: 2,
	}

	evt := event.New(event.TypeCreated, reservation, start)

	assert.Equal(t, event.TypeCreated, evt.Type)
	assert.Equal(t, "res-1", evt.ReservationID)
	assert.Equal(t, "room-a", evt.RoomID)
	assert.Equal(t, model.StatusConfirmed, evt.Status)
	assert.Equal(t, 2, evt.PartySize)
	assert.NotEmpty(t, evt.StartTime)
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "reservation-events"

	publisher := event.NewPublisher(cfg, mockClient, mocks.NewOtel())
	evt := event.Event{Type: event.TypeCancelled, ReservationID: "res-1", RoomID: "room-a"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "sent keyed by room",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "reservation-events", kafka.Message{Key: "room-a", Value: evt}).
					Return(nil)
			},
		},
		{
			name: "kafka error",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "reservation-events", gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := publisher.Publish(context.Background(), evt)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPublisher_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	publisher := event.NewPublisher(&config.Config{}, mockClient, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), event.Event{Type: event.TypeCreated}))
}
