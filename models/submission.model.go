package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission statuses. The lifecycle is pending -> submitted -> graded;
// only the graded transition is applied by the backend, and it is not
// guarded against re-grading.
const (
	SubmissionPending   = "pending"
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
)

type AssignmentSubmission struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	AssignmentID string     `gorm:"index" json:"assignmentId"`
	StudentID    string     `gorm:"index" json:"studentId"`
	Content      string     `json:"content"`
	Status       string     `gorm:"default:'pending'" json:"status"`
	Score        *int       `json:"score"`
	Feedback     string     `json:"feedback"`
	SubmittedAt  *time.Time `json:"submittedAt"`
	GradedAt     *time.Time `json:"gradedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (s *AssignmentSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
