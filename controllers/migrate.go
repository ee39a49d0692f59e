package controllers

import (
	"github.com/adityaargade07/QnA-Management-System/config"
	"github.com/adityaargade07/QnA-Management-System/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.User{}, &models.Question{})
}
