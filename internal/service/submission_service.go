package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"srs-intake-be/internal/dto"
	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/srsclient"
	"srs-intake-be/pkg/srsform"

	"github.com/google/uuid"
)

// GeneratorClient posts a built payload to the document generation service.
type GeneratorClient interface {
	Submit(ctx context.Context, payload *srsform.Payload) *srsclient.Task[json.RawMessage]
}

type ISubmissionService interface {
	Submit(ctx context.Context, state *srsform.FormState) (*dto.SubmitFormResponse, error)
	Check(state *srsform.FormState) (*srsform.Payload, error)
}

type submissionService struct {
	builder          *srsform.Builder
	generator        GeneratorClient
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSubmissionService(
	builder *srsform.Builder,
	generator GeneratorClient,
	publisherService IPublisherService,
	logger logger.ILogger,
) ISubmissionService {
	return &submissionService{
		builder:          builder,
		generator:        generator,
		publisherService: publisherService,
		logger:           logger,
	}
}

// Check builds the payload and verifies it against the wire contract
// without contacting the generator.
func (s *submissionService) Check(state *srsform.FormState) (*srsform.Payload, error) {
	payload, err := s.builder.Build(state)
	if err != nil {
		return nil, err
	}
	if err := srsform.CheckContract(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func (s *submissionService) Submit(ctx context.Context, state *srsform.FormState) (*dto.SubmitFormResponse, error) {
	submissionId := uuid.New()

	payload, err := s.builder.Build(state)
	if err != nil {
		s.publish(ctx, dto.SubmissionEventMessage{
			SubmissionId: submissionId,
			Outcome:      dto.SubmissionRejected,
			ProjectName:  state.Trimmed(srsform.FieldProjectName),
			Reason:       err.Error(),
		})
		return nil, err
	}

	ack, err := s.generator.Submit(ctx, payload).Await(ctx)
	if err != nil {
		event := dto.SubmissionEventMessage{
			SubmissionId: submissionId,
			Outcome:      dto.SubmissionFailed,
			ProjectName:  payload.ProjectIdentity.ProjectName,
			Domain:       payload.SystemContext.Domain,
			Reason:       err.Error(),
		}
		var transportErr *srsclient.TransportError
		if errors.As(err, &transportErr) && transportErr.Status != 0 {
			s.logger.Warn("SUBMISSION", "Generator rejected payload", map[string]interface{}{
				"submission_id": submissionId.String(),
				"status":        transportErr.Status,
			})
		}
		s.publish(ctx, event)
		return nil, err
	}

	s.publish(ctx, dto.SubmissionEventMessage{
		SubmissionId: submissionId,
		Outcome:      dto.SubmissionAccepted,
		ProjectName:  payload.ProjectIdentity.ProjectName,
		Domain:       payload.SystemContext.Domain,
	})

	return &dto.SubmitFormResponse{
		SubmissionId: submissionId,
		Domain:       payload.SystemContext.Domain,
		Ack:          ack,
	}, nil
}

func (s *submissionService) publish(ctx context.Context, msg dto.SubmissionEventMessage) {
	if s.publisherService == nil {
		return
	}
	msg.OccurredAt = time.Now().UTC()
	if err := s.publisherService.PublishSubmission(ctx, msg); err != nil {
		s.logger.Error("SUBMISSION", "Failed to publish submission event", map[string]interface{}{
			"submission_id": msg.SubmissionId.String(),
			"error":         err.Error(),
		})
	}
}
