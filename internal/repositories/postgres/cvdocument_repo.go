package postgres

import (
	"context"

	"github.com/jobport/jobport/internal/models"
	"gorm.io/gorm"
)

type CVDocumentRepository interface {
	Insert(ctx context.Context, d *models.CVDocument) error
	LatestByUser(ctx context.Context, userID string) (*models.CVDocument, error)
}

type cvDocumentRepo struct {
	db *gorm.DB
}

func NewCVDocumentRepo(db *gorm.DB) CVDocumentRepository {
	return &cvDocumentRepo{db: db}
}

func (r *cvDocumentRepo) Insert(ctx context.Context, d *models.CVDocument) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *cvDocumentRepo) LatestByUser(ctx context.Context, userID string) (*models.CVDocument, error) {
	var row models.CVDocument
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_at DESC").
		Take(&row).Error
	return &row, err
}
