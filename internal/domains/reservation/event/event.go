package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"easybooking/config"
	"easybooking/infras/kafka"
	"easybooking/infras/otel"
	"easybooking/internal/domains/reservation/model"
	"easybooking/shared/constant"
	"easybooking/shared/timezone"
	"fmt"
	"time"
)

type Type string

const (
	TypeCreated   Type = "reservation.created"
	TypeUpdated   Type = "reservation.updated"
	TypeCancelled Type = "reservation.cancelled"
)

type Event struct {
	Type          Type         `json:"type"`
	ReservationID string       `json:"reservation_id"`
	UserID        string       `json:"user_id"`
	RoomID        string       `json:"room_id"`
	StartTime     string       `json:"start_time"`
	EndTime       string       `json:"end_time"`
	Status        model.Status `json:"status"`
	PartySize     int          `json:"party_size"`
	OccurredAt    string       `json:"occurred_at"`
}

func New(eventType Type, reservation model.Reservation, occurredAt time.Time) Event {
	return Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		RoomID:        reservation.RoomID,
		StartTime:     timezone.Format(reservation.StartTime, constant.DateFormat),
		EndTime:       timezone.Format(reservation.EndTime, constant.DateFormat),
		Status:        reservation.Status,
		PartySize:     reservation.PartySize,
		OccurredAt:    timezone.Format(occurredAt, constant.DateFormat),
	}
}

// Publisher announces reservation lifecycle changes.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// NewPublisher returns a Kafka publisher, or one that drops events when Kafka is disabled.
func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

// Publish keys messages by room so events of one room stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttribute("event.type", string(event.Type))

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.RoomID, Value: event})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ Event) error {
	return nil
}
