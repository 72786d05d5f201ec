package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmployerApplicationRepository is the employer-facing half of the dual
// application store. The unique compound index on (job_id, applicant_id)
// (see config.EnsureMongoIndexes) arbitrates racing applies; Insert maps its
// violation to ErrConflict.
type EmployerApplicationRepository interface {
	Insert(ctx context.Context, a *models.EmployerApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*models.EmployerApplication, error)
	GetByJobApplicant(ctx context.Context, jobID, applicantID string) (*models.EmployerApplication, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.EmployerApplication, error)
	SetStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) error
	// DeleteByApplicationID reports whether a row was deleted.
	DeleteByApplicationID(ctx context.Context, applicationID string) (bool, error)
}

type employerApplicationRepo struct {
	col *mongo.Collection
}

func NewEmployerApplicationRepo(db *mongo.Database) EmployerApplicationRepository {
	return &employerApplicationRepo{col: db.Collection("employer_applications")}
}

func (r *employerApplicationRepo) Insert(ctx context.Context, a *models.EmployerApplication) error {
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrConflict
	}
	return err
}

func (r *employerApplicationRepo) GetByApplicationID(ctx context.Context, applicationID string) (*models.EmployerApplication, error) {
	var a models.EmployerApplication
	err := r.col.FindOne(ctx, bson.M{"application_id": applicationID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *employerApplicationRepo) GetByJobApplicant(ctx context.Context, jobID, applicantID string) (*models.EmployerApplication, error) {
	var a models.EmployerApplication
	err := r.col.FindOne(ctx, bson.M{"job_id": jobID, "applicant_id": applicantID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *employerApplicationRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.EmployerApplication, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"employer_id": employerID},
		options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.EmployerApplication
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *employerApplicationRepo) SetStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"application_id": applicationID},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

func (r *employerApplicationRepo) DeleteByApplicationID(ctx context.Context, applicationID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"application_id": applicationID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
