package models

import "time"

// CVDocument is the archive record of a CV that passed verification.
type CVDocument struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID   string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	FileName string `gorm:"column:file_name;type:text" json:"file_name"`
	FilePath string `gorm:"column:file_path;type:text" json:"file_path"` // object key, not a public URL

	FileSize int    `gorm:"column:file_size;type:integer" json:"file_size"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mime_type"`

	// Keyword-density score recorded at verification time.
	MatchedKeywordCount int `gorm:"column:matched_keyword_count;type:integer" json:"matched_keyword_count"`

	UploadAt time.Time `gorm:"column:upload_at;type:timestamptz" json:"upload_at"`
}

func (CVDocument) TableName() string { return "cv_documents" }
