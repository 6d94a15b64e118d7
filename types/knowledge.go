package types

import "time"

const (
	SourceTypeURL    = "url"
	SourceTypeUpload = "upload"
	SourceTypeManual = "manual"
)

// KnowledgeEntry is a titled snippet of business knowledge used as chat context.
type KnowledgeEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SourceURL  *string   `gorm:"size:500" json:"source_url"`
	SourceType string    `gorm:"size:50;not null" json:"source_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
