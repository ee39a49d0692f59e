package routes

import (
	"github.com/adityaargade07/QnA-Management-System/controllers"
	"github.com/adityaargade07/QnA-Management-System/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the full HTTP surface: public auth routes, the
// authenticated user search, and the admin-only question bank operations.
func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.GET("/login", controllers.LoginPrompt)

	// Routes for any authenticated user
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", controllers.GetProfile)
		auth.GET("/user/search", controllers.UserSearch)
	}

	// Admin-only question bank operations
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("admin"))
	{
		admin.GET("/dashboard", controllers.Dashboard)
		admin.POST("/questions", controllers.AddQuestion)
		admin.POST("/questions/upload", controllers.BulkUpload)
		admin.POST("/questions/delete", controllers.DeleteQuestions)
		admin.GET("/search", controllers.AdminSearch)
		admin.GET("/export", controllers.ExportCSV)
		admin.GET("/ws", controllers.HandleWebSocket)
	}

	return r
}
