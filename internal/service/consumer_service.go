package service

import (
	"context"
	"encoding/json"

	"srs-intake-be/internal/dto"
	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventMirror forwards events to an external bus (NATS in production).
type EventMirror interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	// Consume blocks until ctx is cancelled or the subscription closes.
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	mirror     EventMirror
	logger     logger.ILogger
}

// NewConsumerService builds the submission event consumer. mirror may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	mirror EventMirror,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		mirror:     mirror,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	cs.logger.Info("CONSUMER", "Listening for submission events", map[string]interface{}{
		"topic": cs.topicName,
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			cs.processMessage(ctx, msg)
		}
	}
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SubmissionEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal submission event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // redelivery would fail the same way
		return
	}

	details := map[string]interface{}{
		"submission_id": payload.SubmissionId.String(),
		"outcome":       payload.Outcome,
		"project_name":  payload.ProjectName,
		"domain":        payload.Domain,
	}
	if payload.Reason != "" {
		details["reason"] = payload.Reason
	}
	if payload.Outcome == dto.SubmissionFailed {
		cs.logger.Warn("SUBMISSION", "Submission failed upstream", details)
	} else {
		cs.logger.Info("SUBMISSION", "Submission processed", details)
	}

	if cs.mirror != nil {
		event := events.SubmissionEvent{
			SubmissionId: payload.SubmissionId,
			Outcome:      payload.Outcome,
			ProjectName:  payload.ProjectName,
			Domain:       payload.Domain,
			Reason:       payload.Reason,
			OccurredAt:   payload.OccurredAt,
		}
		if err := cs.mirror.Publish(ctx, event); err != nil {
			cs.logger.Error("CONSUMER", "Failed to mirror submission event", map[string]interface{}{
				"submission_id": payload.SubmissionId.String(),
				"error":         err.Error(),
			})
		}
	}

	msg.Ack()
}
