package dto

import (
	"encoding/json"
	"time"

	"srs-intake-be/pkg/domain"
	"srs-intake-be/pkg/srsform"

	"github.com/google/uuid"
)

// Section types the enhancer knows how to format.
const (
	SectionProblemStatement = "Problem Statement"
	SectionCoreFeatures     = "Core Features"
	SectionPrimaryUserFlow  = "Primary User Flow"
)

type EnhanceSectionRequest struct {
	SectionType string `json:"section_type" validate:"required,oneof='Problem Statement' 'Core Features' 'Primary User Flow'"`
	UserInput   string `json:"user_input" validate:"required,notblank,max=8000"`
}

type EnhanceSectionResponse struct {
	Content string `json:"content"`
}

type SelectDomainRequest struct {
	Domain string `json:"domain" form:"domain"`
}

type DomainListResponse struct {
	Domains []string `json:"domains"`
}

type DomainEntryResponse struct {
	Key string `json:"key"`
	domain.Entry
}

type DomainPanelResponse = srsform.PanelView

type SubmitFormResponse struct {
	SubmissionId uuid.UUID       `json:"submission_id"`
	Domain       string          `json:"domain"`
	Ack          json.RawMessage `json:"ack"`
}

// Submission outcomes published on the event bus.
const (
	SubmissionAccepted = "SRS_SUBMISSION_ACCEPTED"
	SubmissionRejected = "SRS_SUBMISSION_REJECTED"
	SubmissionFailed   = "SRS_SUBMISSION_FAILED"
)

type SubmissionEventMessage struct {
	SubmissionId uuid.UUID `json:"submission_id"`
	Outcome      string    `json:"outcome"`
	ProjectName  string    `json:"project_name,omitempty"`
	Domain       string    `json:"domain,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
