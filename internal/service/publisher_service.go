package service

import (
	"context"
	"encoding/json"
	"fmt"

	"srs-intake-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishSubmission(ctx context.Context, msg dto.SubmissionEventMessage) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) PublishSubmission(ctx context.Context, msg dto.SubmissionEventMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal submission event: %w", err)
	}

	wm := message.NewMessage(watermill.NewUUID(), payload)
	wm.SetContext(ctx)
	wm.Metadata.Set("outcome", msg.Outcome)

	if err := ps.publisher.Publish(ps.topicName, wm); err != nil {
		return fmt.Errorf("publish submission event: %w", err)
	}
	return nil
}
