package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for everything mirrored to the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SRS_SUBMISSION_ACCEPTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// SubmissionEvent records the outcome of one form submission.
type SubmissionEvent struct {
	SubmissionId uuid.UUID
	Outcome      string
	ProjectName  string
	Domain       string
	Reason       string
	OccurredAt   time.Time
}

func (e SubmissionEvent) EventType() string {
	return e.Outcome
}

func (e SubmissionEvent) Payload() map[string]interface{} {
	data := map[string]interface{}{
		"submission_id": e.SubmissionId.String(),
		"occurred_at":   e.OccurredAt.Format(time.RFC3339),
	}
	if e.ProjectName != "" {
		data["project_name"] = e.ProjectName
	}
	if e.Domain != "" {
		data["domain"] = e.Domain
	}
	if e.Reason != "" {
		data["reason"] = e.Reason
	}
	return data
}

func (e SubmissionEvent) Timestamp() time.Time {
	return e.OccurredAt
}
