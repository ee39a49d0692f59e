package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/adityaargade07/QnA-Management-System/models"

	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"
)

// MaxImportRows caps a single bulk upload. Files beyond this are rejected
// before any row is staged.
const MaxImportRows = 20000

var ErrTooManyRows = fmt.Errorf("import exceeds the maximum of %d rows", MaxImportRows)

// ImportSummary reports the outcome of a bulk upload.
type ImportSummary struct {
	Uploaded int `json:"uploaded_count"`
	Skipped  int `json:"skipped_count"`
}

// ParsedRow holds the cells of one data row after column-name mapping,
// before validation.
type ParsedRow struct {
	PaperUnit      string
	SetCode        string
	QuestionNumber string
	Question       string
	Answer         string
	DiagramPath    string
	ReferenceLink  string
}

// columnIndex maps the expected header names to their positions in the
// uploaded file. A value of -1 means the column is absent.
type columnIndex struct {
	paperUnit     int
	setCode       int
	qno           int
	question      int
	answer        int
	diagramPath   int
	referenceLink int
}

func mapColumns(header []string) columnIndex {
	idx := columnIndex{
		paperUnit: -1, setCode: -1, qno: -1, question: -1,
		answer: -1, diagramPath: -1, referenceLink: -1,
	}
	answers := -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Paper/Unit":
			idx.paperUnit = i
		case "Set":
			idx.setCode = i
		case "Qno":
			idx.qno = i
		case "Question":
			idx.question = i
		case "Answer":
			idx.answer = i
		case "Answers":
			answers = i
		case "Diagram Path":
			idx.diagramPath = i
		case "Reference Link":
			idx.referenceLink = i
		}
	}
	// An "Answer" column wins over "Answers" when both are present.
	if idx.answer == -1 {
		idx.answer = answers
	}
	return idx
}

// cell returns the trimmed value at column i, or "" when the column is
// absent or the row is too short.
func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(idx columnIndex, record []string) ParsedRow {
	return ParsedRow{
		PaperUnit:      cell(record, idx.paperUnit),
		SetCode:        cell(record, idx.setCode),
		QuestionNumber: cell(record, idx.qno),
		Question:       cell(record, idx.question),
		Answer:         cell(record, idx.answer),
		DiagramPath:    cell(record, idx.diagramPath),
		ReferenceLink:  cell(record, idx.referenceLink),
	}
}

// validateRow turns a parsed row into a Question, or reports false when any
// of the four required cells is blank. A blank Answer becomes an empty
// string, while blank Diagram Path / Reference Link become NULL.
func validateRow(row ParsedRow) (models.Question, bool) {
	if row.PaperUnit == "" || row.SetCode == "" || row.QuestionNumber == "" || row.Question == "" {
		return models.Question{}, false
	}
	q := models.Question{
		PaperUnit:      row.PaperUnit,
		SetCode:        row.SetCode,
		QuestionNumber: row.QuestionNumber,
		Question:       row.Question,
		Answer:         row.Answer,
	}
	if row.DiagramPath != "" {
		q.DiagramPath = &row.DiagramPath
	}
	if row.ReferenceLink != "" {
		q.ReferenceLink = &row.ReferenceLink
	}
	return q, true
}

// decodeUpload returns the upload as UTF-8 text, falling back to an
// ISO 8859-1 interpretation when the bytes are not valid UTF-8.
func decodeUpload(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ImportCSV runs the bulk upload pipeline: decode, parse, validate each row,
// then commit every accepted row in a single transaction. Rows missing a
// required field are counted as skipped. A file that cannot be parsed as CSV
// aborts the whole upload with an error and nothing is persisted.
func ImportCSV(db *gorm.DB, r io.Reader) (ImportSummary, error) {
	var summary ImportSummary

	text, err := decodeUpload(r)
	if err != nil {
		return summary, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err == io.EOF {
		return summary, nil // empty file
	}
	if err != nil {
		return summary, err
	}
	idx := mapColumns(header)

	var accepted []models.Question
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportSummary{}, err
		}
		rows++
		if rows > MaxImportRows {
			return ImportSummary{}, ErrTooManyRows
		}

		question, ok := validateRow(parseRow(idx, record))
		if !ok {
			summary.Skipped++
			continue
		}
		accepted = append(accepted, question)
	}

	if len(accepted) > 0 {
		// All-or-nothing: a failed commit persists none of the batch.
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&accepted).Error
		}); err != nil {
			return ImportSummary{}, err
		}
	}
	summary.Uploaded = len(accepted)
	return summary, nil
}
