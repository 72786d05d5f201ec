package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type JobPosting struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployerID  string `gorm:"column:employer_id;type:uuid;index" json:"employer_id"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	CompanyName string `gorm:"column:company_name;type:text" json:"company_name"`
	Description string `gorm:"column:description;type:text" json:"description"`

	// Acceptable qualification labels; an applicant matching the least
	// demanding label qualifies.
	EducationRequirements pq.StringArray `gorm:"column:education_requirements;type:text[]" json:"education_requirements"`

	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;index" json:"created_at"`
}

func (JobPosting) TableName() string { return "job_postings" }
