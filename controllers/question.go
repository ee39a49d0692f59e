package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/adityaargade07/QnA-Management-System/config"
	"github.com/adityaargade07/QnA-Management-System/models"
	"github.com/adityaargade07/QnA-Management-System/services"

	"github.com/gin-gonic/gin"
)

// Dashboard returns every question for the admin overview.
func Dashboard(c *gin.Context) {
	questions, err := services.ListQuestions(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// AddQuestion creates a single question from a manual form submission.
func AddQuestion(c *gin.Context) {
	var req struct {
		PaperUnit      string `json:"paper_unit" binding:"required"`
		SetCode        string `json:"set_code" binding:"required"`
		QuestionNumber string `json:"question_number" binding:"required"`
		Question       string `json:"question" binding:"required"`
		Answer         string `json:"answer"`
		DiagramPath    string `json:"diagram_path"`
		ReferenceLink  string `json:"reference_link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	question := models.Question{
		PaperUnit:      req.PaperUnit,
		SetCode:        req.SetCode,
		QuestionNumber: req.QuestionNumber,
		Question:       req.Question,
		Answer:         req.Answer,
	}
	if req.DiagramPath != "" {
		question.DiagramPath = &req.DiagramPath
	}
	if req.ReferenceLink != "" {
		question.ReferenceLink = &req.ReferenceLink
	}

	if err := services.CreateQuestion(config.DB, &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add question"})
		return
	}

	BroadcastQuestionEvent("question_added", question)
	c.JSON(http.StatusCreated, gin.H{"message": "Question added successfully!", "question": question})
}

// BulkUpload ingests a CSV file of questions and reports how many rows were
// uploaded and how many were skipped.
func BulkUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a valid CSV file."})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a valid CSV file."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a valid CSV file."})
		return
	}
	defer file.Close()

	summary, err := services.ImportCSV(config.DB, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing CSV: %v", err)})
		return
	}

	BroadcastQuestionEvent("bulk_upload", summary)
	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("Bulk upload successful! %d uploaded, %d skipped.", summary.Uploaded, summary.Skipped),
		"uploaded_count": summary.Uploaded,
		"skipped_count":  summary.Skipped,
	})
}

// ExportCSV sends the whole question bank as a CSV download.
func ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=dataset.csv")
	if err := services.ExportCSV(config.DB, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export questions"})
		return
	}
}

// filterParam reads the first non-empty of the given query parameter names.
func filterParam(c *gin.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			return v
		}
	}
	return ""
}

// AdminSearch filters questions by the structural fields only.
func AdminSearch(c *gin.Context) {
	filter := services.QuestionFilter{
		PaperUnit:      filterParam(c, "paper_unit", "paper"),
		SetCode:        filterParam(c, "set_code", "set"),
		QuestionNumber: filterParam(c, "qno"),
	}

	results, err := services.SearchQuestions(config.DB, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// DeleteQuestions removes the questions named by the id list. Ids that do
// not exist are ignored.
func DeleteQuestions(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No questions selected for deletion."})
		return
	}

	deleted, err := services.DeleteQuestions(config.DB, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete questions"})
		return
	}

	BroadcastQuestionEvent("questions_deleted", gin.H{"deleted_count": deleted})
	c.JSON(http.StatusOK, gin.H{
		"message":       "Selected questions have been deleted successfully!",
		"deleted_count": deleted,
	})
}
