package services

import (
	"github.com/adityaargade07/QnA-Management-System/models"

	"gorm.io/gorm"
)

// ListQuestions returns every question in insertion order.
func ListQuestions(db *gorm.DB) ([]models.Question, error) {
	var questions []models.Question
	if err := db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateQuestion persists a single manually-added question.
func CreateQuestion(db *gorm.DB, q *models.Question) error {
	return db.Create(q).Error
}

// DeleteQuestions removes the questions with the given ids and returns how
// many were actually deleted. Ids that do not exist are silently ignored;
// deleting an empty list is a no-op.
func DeleteQuestions(db *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Where("id IN ?", ids).Delete(&models.Question{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
