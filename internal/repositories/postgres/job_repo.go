package postgres

import (
	"context"
	"errors"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	Insert(ctx context.Context, j *models.JobPosting) error
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
	// List returns the full catalog in posting order; eligibility filtering
	// preserves this order.
	List(ctx context.Context) ([]models.JobPosting, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Insert(ctx context.Context, j *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var j models.JobPosting
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) List(ctx context.Context) ([]models.JobPosting, error) {
	var rows []models.JobPosting
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	var rows []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
