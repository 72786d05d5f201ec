package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// One logical application is materialized as two physical rows: an
// EmployerApplication in Mongo (employer-facing listing and decisions) and an
// ApplicationHistory row in Postgres (applicant-facing history). Both carry
// the same ApplicationID and the same natural key (job_id, applicant_id); a
// unique index on the natural key in each store arbitrates duplicate applies.

// EmployerApplication is the employer-facing row. Status stays unset until an
// employer decides; there is no default pending state on this side.
type EmployerApplication struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ApplicationID string             `bson:"application_id" json:"application_id"`

	JobID       string `bson:"job_id" json:"job_id"`
	ApplicantID string `bson:"applicant_id" json:"applicant_id"`
	EmployerID  string `bson:"employer_id" json:"employer_id"`

	JobTitle      string `bson:"job_title" json:"job_title"`
	CompanyName   string `bson:"company_name" json:"company_name"`
	ApplicantName string `bson:"applicant_name" json:"applicant_name"`

	Status ApplicationStatus `bson:"status,omitempty" json:"status,omitempty"`

	AppliedAt time.Time `bson:"applied_at" json:"applied_at"`
}

// ApplicationHistory is the applicant-facing row. Created pending; the
// employer's decision is mirrored here best-effort.
type ApplicationHistory struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"application_id"`

	JobID       string `gorm:"column:job_id;type:uuid;uniqueIndex:idx_history_job_applicant" json:"job_id"`
	ApplicantID string `gorm:"column:applicant_id;type:uuid;uniqueIndex:idx_history_job_applicant;index" json:"applicant_id"`

	JobTitle      string `gorm:"column:job_title;type:text" json:"job_title"`
	CompanyName   string `gorm:"column:company_name;type:text" json:"company_name"`
	ApplicantName string `gorm:"column:applicant_name;type:text" json:"applicant_name"`

	Status ApplicationStatus `gorm:"column:status;type:text" json:"status"`

	AppliedAt time.Time `gorm:"column:applied_at;type:timestamptz" json:"applied_at"`
}

func (ApplicationHistory) TableName() string { return "application_history" }
