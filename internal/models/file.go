package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is the metadata row for an uploaded blob. StoragePath is the
// id-keyed location on disk and is unique across all files; the blob
// itself lives outside the database.
type File struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	SizeBytes   int64     `json:"size_bytes" gorm:"not null"`
	MimeType    string    `json:"mime_type"`
	StoragePath string    `json:"-" gorm:"uniqueIndex;not null"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func (File) TableName() string { return "files" }

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.UploadedAt.IsZero() {
		f.UploadedAt = time.Now().UTC()
	}
	return nil
}
