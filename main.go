package main

import (
	"log"
	"os"

	"github.com/adityaargade07/QnA-Management-System/config"
	"github.com/adityaargade07/QnA-Management-System/controllers"
	"github.com/adityaargade07/QnA-Management-System/routes"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Connect to PostgreSQL database
	dsn := os.Getenv("DATABASE_URL")
	if err := config.ConnectDatabase(dsn); err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer config.CloseDatabase()

	// Migrate User and Question models
	controllers.MigrateModels(config.DB)

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to run server: ", err)
	}
}
