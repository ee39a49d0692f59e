package models

import "time"

// Question is a single exam question in the bank. DiagramPath and
// ReferenceLink are pointers so that a missing value is stored as NULL,
// while a missing Answer is stored as an empty string.
type Question struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PaperUnit      string    `json:"paper_unit" gorm:"size:100;not null"`
	SetCode        string    `json:"set_code" gorm:"size:10;not null"`
	QuestionNumber string    `json:"question_number" gorm:"size:100;not null"`
	Question       string    `json:"question" gorm:"type:text;not null"`
	Answer         string    `json:"answer" gorm:"type:text"`
	DiagramPath    *string   `json:"diagram_path" gorm:"size:255"`
	ReferenceLink  *string   `json:"reference_link" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
}
