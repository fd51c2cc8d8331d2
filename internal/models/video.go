package models

import (
	"time"

	"gorm.io/gorm"
)

// Video represents a processed YouTube video and its cleaned transcript
type Video struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	VideoID    string         `gorm:"uniqueIndex;size:16" json:"video_id"`
	URL        string         `json:"url"`
	Title      string         `json:"title"`
	Author     string         `json:"author"`
	Language   string         `json:"language"`
	Transcript string         `gorm:"type:text" json:"transcript"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}
