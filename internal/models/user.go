package models

import "time"

type UserRole string

const (
	RoleSeeker   UserRole = "seeker"
	RoleEmployer UserRole = "employer"
)

type User struct {
	ID           string   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string   `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string   `gorm:"column:password_hash;type:text" json:"-"`
	Role         UserRole `gorm:"column:role;type:text" json:"role"`

	FullName    string `gorm:"column:full_name;type:text" json:"full_name"`
	CompanyName string `gorm:"column:company_name;type:text" json:"company_name,omitempty"` // employers only

	// Set when the sign-up document (CV or certificate) passed verification.
	DocumentVerified bool `gorm:"column:document_verified" json:"document_verified"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (User) TableName() string { return "users" }
