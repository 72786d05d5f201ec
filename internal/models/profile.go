package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type SeekerProfile struct {
	UserID      string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FullName    string `gorm:"column:full_name;type:text" json:"full_name"`
	PhoneNumber string `gorm:"column:phone_number;type:text" json:"phone_number"`

	// Qualification label on the education scale. Unknown or empty labels
	// rank lowest when matching; they are not rejected here.
	EducationLevel string `gorm:"column:education_level;type:text" json:"education_level"`

	Skills pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`

	// Extracted text of the latest verified CV.
	CVText string `gorm:"column:cv_text;type:text" json:"cv_text"`

	Experience  datatypes.JSON `gorm:"column:experience;type:jsonb" json:"experience"`
	Preferences datatypes.JSON `gorm:"column:preferences;type:jsonb" json:"preferences"`

	CVEmbedding pgvector.Vector `gorm:"column:cv_embedding;type:vector(768)" json:"cv_embedding"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (SeekerProfile) TableName() string { return "seeker_profiles" }
