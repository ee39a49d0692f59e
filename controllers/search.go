package controllers

import (
	"net/http"

	"github.com/adityaargade07/QnA-Management-System/config"
	"github.com/adityaargade07/QnA-Management-System/services"

	"github.com/gin-gonic/gin"
)

// UserSearch filters questions by the structural fields plus a free-text
// keyword spanning question, answer, diagram path and reference link.
func UserSearch(c *gin.Context) {
	filter := services.QuestionFilter{
		PaperUnit:      filterParam(c, "paper_unit", "paper"),
		SetCode:        filterParam(c, "set_code", "set"),
		QuestionNumber: filterParam(c, "qno"),
		Keyword:        filterParam(c, "search"),
	}

	results, err := services.SearchQuestions(config.DB, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
