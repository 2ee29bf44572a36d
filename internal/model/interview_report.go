package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewReport is written exactly once, when a session is finished.
type InterviewReport struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkID        string     `gorm:"not null;index" json:"clerkId"`
	SessionID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"sessionId"`
	Skill          string     `json:"skill"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	Accuracy       float64    `json:"accuracy"`
	Strengths      StringList `gorm:"type:jsonb" json:"strengths"`
	Weaknesses     StringList `gorm:"type:jsonb" json:"weaknesses"`
	Tips           StringList `gorm:"type:jsonb" json:"tips"`
	CreatedAt      time.Time  `json:"createdAt"`
}
