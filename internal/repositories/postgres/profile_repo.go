package postgres

import (
	"context"
	"errors"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.SeekerProfile, error)
	Upsert(ctx context.Context, p *models.SeekerProfile) error
	SetCVText(ctx context.Context, userID, cvText string) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.SeekerProfile, error) {
	var p models.SeekerProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) Upsert(ctx context.Context, p *models.SeekerProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "phone_number", "education_level", "skills", "cv_text", "experience", "preferences", "cv_embedding", "updated_at"}),
		}).
		Create(p).Error
}

func (r *profileRepo) SetCVText(ctx context.Context, userID, cvText string) error {
	return r.db.WithContext(ctx).
		Model(&models.SeekerProfile{}).
		Where("user_id = ?", userID).
		Update("cv_text", cvText).Error
}
