package postgres

import (
	"context"
	"errors"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
	"gorm.io/gorm"
)

// HistoryRepository is the applicant-facing half of the dual application
// store. The composite unique index on (job_id, applicant_id) arbitrates
// racing applies at the store level; Insert maps its violation to ErrConflict.
type HistoryRepository interface {
	Insert(ctx context.Context, h *models.ApplicationHistory) error
	GetByID(ctx context.Context, id string) (*models.ApplicationHistory, error)
	GetByJobApplicant(ctx context.Context, jobID, applicantID string) (*models.ApplicationHistory, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.ApplicationHistory, error)
	ListAppliedJobIDs(ctx context.Context, applicantID string) ([]string, error)
	// UpdateStatusByJobApplicant reports whether a row was updated; a missing
	// row is not an error.
	UpdateStatusByJobApplicant(ctx context.Context, jobID, applicantID string, status models.ApplicationStatus) (bool, error)
	// DeleteByIDAndApplicant deletes only when both id and applicant match.
	DeleteByIDAndApplicant(ctx context.Context, id, applicantID string) (bool, error)
}

type historyRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Insert(ctx context.Context, h *models.ApplicationHistory) error {
	err := r.db.WithContext(ctx).Create(h).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *historyRepo) GetByID(ctx context.Context, id string) (*models.ApplicationHistory, error) {
	var h models.ApplicationHistory
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &h, err
}

func (r *historyRepo) GetByJobApplicant(ctx context.Context, jobID, applicantID string) (*models.ApplicationHistory, error) {
	var h models.ApplicationHistory
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Take(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &h, err
}

func (r *historyRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.ApplicationHistory, error) {
	var rows []models.ApplicationHistory
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *historyRepo) ListAppliedJobIDs(ctx context.Context, applicantID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.ApplicationHistory{}).
		Where("applicant_id = ?", applicantID).
		Pluck("job_id", &ids).Error
	return ids, err
}

func (r *historyRepo) UpdateStatusByJobApplicant(ctx context.Context, jobID, applicantID string, status models.ApplicationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.ApplicationHistory{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}

func (r *historyRepo) DeleteByIDAndApplicant(ctx context.Context, id, applicantID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&models.ApplicationHistory{})
	return res.RowsAffected > 0, res.Error
}
