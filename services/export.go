package services

import (
	"encoding/csv"
	"io"

	"github.com/adityaargade07/QnA-Management-System/models"

	"gorm.io/gorm"
)

// exportHeader is the fixed column order of the download.
var exportHeader = []string{"Paper/Unit", "Set", "Qno", "Question", "Answer", "Diagram Path", "Reference Link"}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportCSV writes the entire question bank as CSV in insertion order.
// Absent optional values are rendered as empty cells. No filtering is
// applied; the export always covers the whole store.
func ExportCSV(db *gorm.DB, w io.Writer) error {
	var questions []models.Question
	if err := db.Order("id").Find(&questions).Error; err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, q := range questions {
		row := []string{
			q.PaperUnit,
			q.SetCode,
			q.QuestionNumber,
			q.Question,
			q.Answer,
			deref(q.DiagramPath),
			deref(q.ReferenceLink),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
