package services

import (
	"strings"

	"github.com/adityaargade07/QnA-Management-System/models"

	"gorm.io/gorm"
)

// QuestionFilter holds the optional predicates for a question search.
// Structural filters are AND-combined substring matches on their field;
// Keyword matches any of question/answer/diagram_path/reference_link.
// The admin search simply leaves Keyword empty.
type QuestionFilter struct {
	PaperUnit      string
	SetCode        string
	QuestionNumber string
	Keyword        string
}

func pattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// SearchQuestions builds a filtered query over the question bank. All
// matches are case-insensitive substrings; results come back in insertion
// order. No filters returns every record.
func SearchQuestions(db *gorm.DB, filter QuestionFilter) ([]models.Question, error) {
	query := db.Model(&models.Question{})

	if s := strings.TrimSpace(filter.PaperUnit); s != "" {
		query = query.Where("LOWER(paper_unit) LIKE ?", pattern(s))
	}
	if s := strings.TrimSpace(filter.SetCode); s != "" {
		query = query.Where("LOWER(set_code) LIKE ?", pattern(s))
	}
	if s := strings.TrimSpace(filter.QuestionNumber); s != "" {
		query = query.Where("LOWER(question_number) LIKE ?", pattern(s))
	}
	if s := strings.TrimSpace(filter.Keyword); s != "" {
		p := pattern(s)
		query = query.Where(
			"LOWER(question) LIKE ? OR LOWER(answer) LIKE ? OR LOWER(diagram_path) LIKE ? OR LOWER(reference_link) LIKE ?",
			p, p, p, p,
		)
	}

	var results []models.Question
	if err := query.Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
