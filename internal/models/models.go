package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job is the canonical, persisted representation of a listing, independent of
// which provider produced it. Rows are insert-only in the ingestion pipeline;
// edits and deletions belong to the save/unsave flows.
type Job struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string  `gorm:"not null" json:"title"`
	Company     string  `gorm:"not null" json:"company"`
	Location    string  `json:"location"`
	Description string  `gorm:"type:text" json:"description"`
	SalaryRange *string `json:"salary_range"`
	JobType     string  `json:"job_type"`
	URL         *string `json:"url"`
	Source      string  `json:"source"`
	UserID      string  `gorm:"index;not null" json:"user_id"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// ChatMessage is one assistant exchange: the user's prompt plus the generated
// response, scoped to the owning user.
type ChatMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Message  string `gorm:"type:text;not null" json:"message"`
	Response string `gorm:"type:text;not null" json:"response"`
	Type     string `gorm:"not null" json:"type"`
	UserID   string `gorm:"index;not null" json:"user_id"`
}

func (ChatMessage) TableName() string { return "chat_history" }

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
