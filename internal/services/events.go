package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/segmentio/kafka-go"
)

// EventSender records that a user's shelf changed. Delivery is best effort.
type EventSender interface {
	Publish(ctx context.Context, eventType, username, volumeID string)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes shelf events to Kafka, keyed by username so one
// user's events stay ordered within a partition.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish sends one event. Failures are logged and otherwise ignored.
func (p *EventPublisher) Publish(ctx context.Context, eventType, username, volumeID string) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Username:  username,
		VolumeID:  volumeID,
		Timestamp: time.Now().Unix(),
	}

	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	msgBytes, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "type", eventType, "err", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(username),
		Value: msgBytes,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", event.EventID, "type", eventType, "err", err)
		return
	}

	logger.Log.Infow("event published", "event_id", event.EventID, "type", eventType, "username", username)
}

// Close releases the underlying writer, if any.
func (p *EventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
