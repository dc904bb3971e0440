package asset

import "time"

// Asset is one stored upload: the original file plus its optional derived
// thumbnail. Rows are created once by the upload pipeline and never
// mutated; a re-upload of the same content gets a fresh identifier.
type Asset struct {
	ID            string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerSlug     string    `gorm:"column:owner_slug;index" json:"owner_slug"`
	OriginalName  string    `gorm:"column:original_name" json:"original_name"`
	MimeType      string    `gorm:"column:mime_type" json:"mime_type"`
	OriginalPath  string    `gorm:"column:original_path" json:"-"`  // relative disk path
	ThumbnailPath string    `gorm:"column:thumbnail_path" json:"-"` // empty for non-images
	FileURL       string    `gorm:"column:file_url" json:"url"`
	ThumbURL      string    `gorm:"column:thumb_url" json:"thumb_url,omitempty"`
	Size          int64     `gorm:"column:size" json:"size"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Asset) TableName() string { return "assets" }
