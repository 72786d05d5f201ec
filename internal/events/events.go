package events

import (
	"context"
	"time"

	"github.com/jobport/jobport/internal/models"
)

const (
	TypeApplied = "applied"
	TypeDecided = "decided"
	TypeDeleted = "deleted"
)

// Event describes one application lifecycle transition. Consumed by the
// consistency auditor; status changes are additionally fanned out to the
// applicant's notification channel.
type Event struct {
	Type          string                   `json:"type"`
	ApplicationID string                   `json:"application_id"`
	JobID         string                   `json:"job_id"`
	ApplicantID   string                   `json:"applicant_id"`
	JobTitle      string                   `json:"job_title,omitempty"`
	Status        models.ApplicationStatus `json:"status,omitempty"`
	At            time.Time                `json:"at"`
}

// Publisher delivery is best-effort: lifecycle operations succeed even when
// the event bus is down.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	NotifyApplicant(ctx context.Context, applicantID string, ev Event) error
}
