package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jobport/jobport/internal/events"
	"github.com/jobport/jobport/internal/models"
	mongorepo "github.com/jobport/jobport/internal/repositories/mongo"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

// ApplicationService owns the invariant that one logical application is one
// row in each of two stores: the employer-view store (mongo) and the
// applicant-history store (postgres). The two rows share an application id
// and the natural key (job_id, applicant_id); each store enforces uniqueness
// on the natural key independently.
//
// Writes within one call are sequenced employer-store first, then history
// store, with no cross-store transaction: a crash between the two leaves a
// detectable partial state (one row present, the other absent) that the
// consistency auditor reports. No automatic compensation is performed.
type ApplicationService interface {
	Apply(ctx context.Context, jobID, applicantID, applicantName string) (*models.EmployerApplication, error)
	Decide(ctx context.Context, applicationID string, status models.ApplicationStatus, employerID string) error
	ListForEmployer(ctx context.Context, employerID string) ([]models.EmployerApplication, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]models.ApplicationHistory, error)
	Delete(ctx context.Context, applicationID, requesterID string, role models.UserRole) error
}

type applicationService struct {
	jobs     pgrepo.JobRepository
	history  pgrepo.HistoryRepository
	employer mongorepo.EmployerApplicationRepository

	bus events.Publisher // optional
	log *logrus.Logger
}

func NewApplicationService(
	jobs pgrepo.JobRepository,
	history pgrepo.HistoryRepository,
	employer mongorepo.EmployerApplicationRepository,
	bus events.Publisher,
	log *logrus.Logger,
) ApplicationService {
	if log == nil {
		log = logrus.New()
	}
	return &applicationService{
		jobs:     jobs,
		history:  history,
		employer: employer,
		bus:      bus,
		log:      log,
	}
}

func (s *applicationService) Apply(ctx context.Context, jobID, applicantID, applicantName string) (*models.EmployerApplication, error) {
	const op = "ApplicationService.Apply"

	if jobID == "" || applicantID == "" || applicantName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id, applicant_id, and applicant_name are required", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	applicationID := uuid.NewString()
	now := time.Now().UTC()

	row := &models.EmployerApplication{
		ApplicationID: applicationID,
		JobID:         job.ID,
		ApplicantID:   applicantID,
		EmployerID:    job.EmployerID,
		JobTitle:      job.Title,
		CompanyName:   job.CompanyName,
		ApplicantName: applicantName,
		AppliedAt:     now,
	}

	// Employer store first; no status until the employer decides.
	if err := s.employer.Insert(ctx, row); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "already applied to this job", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to record employer application", err)
	}

	// History store second. A conflict here still surfaces as one duplicate
	// to the caller; the first write is not compensated.
	hist := &models.ApplicationHistory{
		ID:            applicationID,
		JobID:         job.ID,
		ApplicantID:   applicantID,
		JobTitle:      job.Title,
		CompanyName:   job.CompanyName,
		ApplicantName: applicantName,
		Status:        models.StatusPending,
		AppliedAt:     now,
	}
	if err := s.history.Insert(ctx, hist); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "already applied to this job", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to record application history", err)
	}

	s.publish(ctx, events.Event{
		Type:          events.TypeApplied,
		ApplicationID: applicationID,
		JobID:         job.ID,
		ApplicantID:   applicantID,
		JobTitle:      job.Title,
	})

	return row, nil
}

func (s *applicationService) Decide(ctx context.Context, applicationID string, status models.ApplicationStatus, employerID string) error {
	const op = "ApplicationService.Decide"

	if applicationID == "" || employerID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "application_id and employer_id are required", nil)
	}
	if status != models.StatusAccepted && status != models.StatusRejected {
		return utils.E(utils.CodeInvalidArgument, op, "status must be accepted or rejected", nil)
	}

	row, err := s.employer.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load application", err)
	}
	if row.EmployerID != employerID {
		return utils.E(utils.CodeForbidden, op, "application belongs to another employer", nil)
	}

	// Employer view is the authority for decisions.
	if err := s.employer.SetStatus(ctx, applicationID, status); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to set application status", err)
	}

	// Mirror to the applicant history best-effort: the applicant may have
	// deleted their row, which is a normal outcome, not an error.
	updated, err := s.history.UpdateStatusByJobApplicant(ctx, row.JobID, row.ApplicantID, status)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"application_id": applicationID,
			"job_id":         row.JobID,
			"applicant_id":   row.ApplicantID,
		}).WithError(err).Warn("history status mirror failed")
	} else if !updated {
		s.log.WithFields(logrus.Fields{
			"application_id": applicationID,
			"job_id":         row.JobID,
			"applicant_id":   row.ApplicantID,
		}).Debug("no history row to mirror status into")
	}

	ev := events.Event{
		Type:          events.TypeDecided,
		ApplicationID: applicationID,
		JobID:         row.JobID,
		ApplicantID:   row.ApplicantID,
		JobTitle:      row.JobTitle,
		Status:        status,
	}
	s.publish(ctx, ev)
	if s.bus != nil {
		if err := s.bus.NotifyApplicant(ctx, row.ApplicantID, ev); err != nil {
			s.log.WithError(err).Debug("applicant notify failed")
		}
	}

	return nil
}

func (s *applicationService) ListForEmployer(ctx context.Context, employerID string) ([]models.EmployerApplication, error) {
	const op = "ApplicationService.ListForEmployer"

	if employerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employer_id is required", nil)
	}
	rows, err := s.employer.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) ListForApplicant(ctx context.Context, applicantID string) ([]models.ApplicationHistory, error) {
	const op = "ApplicationService.ListForApplicant"

	if applicantID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "applicant_id is required", nil)
	}
	rows, err := s.history.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list application history", err)
	}
	return rows, nil
}

// Delete is role-dispatched and touches exactly one store: an applicant
// removes their own history row, an employer removes the employer-view row
// for an application on a job they posted. The surviving row in the other
// store may diverge permanently afterwards by design.
func (s *applicationService) Delete(ctx context.Context, applicationID, requesterID string, role models.UserRole) error {
	const op = "ApplicationService.Delete"

	if applicationID == "" || requesterID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "application_id and requester are required", nil)
	}

	ev := events.Event{Type: events.TypeDeleted, ApplicationID: applicationID}

	switch role {
	case models.RoleSeeker:
		deleted, err := s.history.DeleteByIDAndApplicant(ctx, applicationID, requesterID)
		if err != nil {
			return utils.E(utils.CodeInternal, op, "failed to delete application history", err)
		}
		if !deleted {
			return utils.E(utils.CodeNotFound, op, "application not found", nil)
		}
		ev.ApplicantID = requesterID

	case models.RoleEmployer:
		row, err := s.employer.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return utils.E(utils.CodeNotFound, op, "application not found", err)
			}
			return utils.E(utils.CodeInternal, op, "failed to load application", err)
		}
		if row.EmployerID != requesterID {
			return utils.E(utils.CodeForbidden, op, "application belongs to another employer", nil)
		}
		deleted, err := s.employer.DeleteByApplicationID(ctx, applicationID)
		if err != nil {
			return utils.E(utils.CodeInternal, op, "failed to delete application", err)
		}
		if !deleted {
			return utils.E(utils.CodeNotFound, op, "application not found", nil)
		}
		ev.JobID = row.JobID
		ev.ApplicantID = row.ApplicantID

	default:
		return utils.E(utils.CodeForbidden, op, "unsupported role", nil)
	}

	s.publish(ctx, ev)
	return nil
}

func (s *applicationService) publish(ctx context.Context, ev events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		s.log.WithField("event_type", ev.Type).WithError(err).Debug("event publish failed")
	}
}
