package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishAuditEvent publishes a workflow audit event to Kafka. The writer is
// optional; without one the event is only logged. Publish failures never fail
// the workflow.
func publishAuditEvent(ctx context.Context, writer KafkaWriter, action, uid, username, email string) {
	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    action,
		UID:       uid,
		Username:  username,
		Email:     email,
	}

	if writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping audit event", "action", action, "uid", uid)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("audit event published", "event_id", event.EventID, "action", action, "uid", uid)
	}
}
