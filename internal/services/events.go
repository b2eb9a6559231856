package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines the interface for writing messages to Kafka.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher emits governance audit events.
type Publisher interface {
	Publish(ctx context.Context, evt models.GovernanceEvent)
}

// EventPublisher publishes governance events to Kafka, keyed by proposal id.
type EventPublisher struct {
	writer KafkaWriter
	now    Clock
}

// NewEventPublisher creates an EventPublisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter, now Clock) *EventPublisher {
	if now == nil {
		now = SystemClock
	}
	return &EventPublisher{writer: writer, now: now}
}

// Publish writes evt to Kafka. Failures are logged and never returned.
func (p *EventPublisher) Publish(ctx context.Context, evt models.GovernanceEvent) {
	if evt.EventID == "" {
		evt.EventID = uuid.NewString()
	}
	if evt.Timestamp == 0 {
		evt.Timestamp = p.now()
	}

	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ProposalID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
		return
	}

	logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type, "proposal_id", evt.ProposalID)
}
