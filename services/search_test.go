package services

import (
	"testing"

	"github.com/adityaargade07/QnA-Management-System/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

func seedQuestions(t *testing.T, db *gorm.DB) {
	t.Helper()
	questions := []models.Question{
		{PaperUnit: "Paper A", SetCode: "S1", QuestionNumber: "Q1", Question: "What is gravity?", Answer: "A force"},
		{PaperUnit: "Paper A", SetCode: "S2", QuestionNumber: "Q2", Question: "Define velocity", Answer: "Speed with direction", DiagramPath: strptr("diagrams/velocity.png")},
		{PaperUnit: "Paper B", SetCode: "S1", QuestionNumber: "Q1", Question: "Balance the equation", Answer: "", ReferenceLink: strptr("https://chem.example.com")},
	}
	require.NoError(t, db.Create(&questions).Error)
}

func TestSearchNoFiltersReturnsAll(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	results, err := SearchQuestions(db, QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Insertion order is preserved.
	assert.Equal(t, "Q1", results[0].QuestionNumber)
	assert.Equal(t, "Q2", results[1].QuestionNumber)
	assert.Equal(t, "Paper B", results[2].PaperUnit)
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	results, err := SearchQuestions(db, QuestionFilter{SetCode: "S9"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	results, err := SearchQuestions(db, QuestionFilter{PaperUnit: "paper a"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, q := range results {
		assert.Equal(t, "Paper A", q.PaperUnit)
	}
}

func TestSearchStructuralFiltersAreANDCombined(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	results, err := SearchQuestions(db, QuestionFilter{PaperUnit: "Paper A", SetCode: "S1"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "What is gravity?", results[0].Question)
}

func TestSearchKeywordSpansTextFields(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	// Matches the question text.
	results, err := SearchQuestions(db, QuestionFilter{Keyword: "GRAVITY"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Q1", results[0].QuestionNumber)

	// Matches the answer.
	results, err = SearchQuestions(db, QuestionFilter{Keyword: "direction"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Q2", results[0].QuestionNumber)

	// Matches the diagram path.
	results, err = SearchQuestions(db, QuestionFilter{Keyword: "velocity.png"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Matches the reference link.
	results, err = SearchQuestions(db, QuestionFilter{Keyword: "chem.example"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Paper B", results[0].PaperUnit)
}

func TestSearchKeywordIntersectsStructuralFilters(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	// Keyword alone matches two Paper A rows via "e"-heavy text; narrow with
	// a structural filter to get the intersection.
	results, err := SearchQuestions(db, QuestionFilter{PaperUnit: "Paper A", Keyword: "velocity"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Q2", results[0].QuestionNumber)

	results, err = SearchQuestions(db, QuestionFilter{PaperUnit: "Paper B", Keyword: "velocity"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchBlankFiltersAreIgnored(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db)

	results, err := SearchQuestions(db, QuestionFilter{PaperUnit: "  ", SetCode: "", Keyword: " "})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
