// Package events publishes domain lifecycle events to Kafka. Publishing is
// fire-and-forget: a broker outage must never fail the request that
// triggered the event.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/kafka"
	"mesa/shared/timezone"
)

const (
	TopicReservationEvents = "reservation-events"

	TypeReservationCreated   = "reservation.created"
	TypeReservationUpdated   = "reservation.updated"
	TypeReservationConfirmed = "reservation.confirmed"
	TypeReservationActivated = "reservation.activated"
	TypeReservationFinished  = "reservation.finished"
	TypeReservationLate      = "reservation.late"
	TypeReservationDeleted   = "reservation.deleted"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	RestaurantID  string    `json:"restaurant_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishReservationEvent(ctx context.Context, eventType, reservationID, restaurantID, status string)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) PublishReservationEvent(ctx context.Context, eventType, reservationID, restaurantID, status string) {
	if !p.cfg.Kafka.Enable {
		return
	}

	event := ReservationEvent{
		Type:          eventType,
		ReservationID: reservationID,
		RestaurantID:  restaurantID,
		Status:        status,
		OccurredAt:    timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := p.client.SendMessages(c, TopicReservationEvents, kafka.Message{
			Key:   reservationID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("reservation_id", reservationID).Msg("failed to publish reservation event")
		}
	}()
}
