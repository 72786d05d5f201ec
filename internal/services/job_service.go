package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/jobport/jobport/internal/cache"
	"github.com/jobport/jobport/internal/match"
	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

type JobService interface {
	Create(ctx context.Context, employerID, title, companyName, description string, educationRequirements []string, metadataJSON []byte) (*models.JobPosting, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error)
}

type jobService struct {
	jobs  pgrepo.JobRepository
	cache cache.Cache // optional; catalog key invalidated on create
}

func NewJobService(jobs pgrepo.JobRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, cache: c}
}

func (s *jobService) Create(ctx context.Context, employerID, title, companyName, description string, educationRequirements []string, metadataJSON []byte) (*models.JobPosting, error) {
	const op = "JobService.Create"

	if employerID == "" || title == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employer_id and title are required", nil)
	}
	if len(educationRequirements) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "at least one education requirement is required", nil)
	}
	// Labels are validated at write time; the rank-0 fallback only applies
	// when reading data that predates this check.
	for _, label := range educationRequirements {
		if _, ok := match.ParseLevel(label); !ok {
			return nil, utils.E(utils.CodeInvalidArgument, op, "unknown education level: "+label, nil)
		}
	}

	row := &models.JobPosting{
		ID:                    uuid.NewString(),
		EmployerID:            employerID,
		Title:                 title,
		CompanyName:           companyName,
		Description:           description,
		EducationRequirements: educationRequirements,
		CreatedAt:             time.Now().UTC(),
	}
	if len(metadataJSON) > 0 {
		row.Metadata = datatypes.JSON(metadataJSON)
	}

	if err := s.jobs.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job posting", err)
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, catalogCacheKey)
	}
	return row, nil
}

func (s *jobService) ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	const op = "JobService.ListByEmployer"

	if employerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employer_id is required", nil)
	}
	rows, err := s.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list job postings", err)
	}
	return rows, nil
}
