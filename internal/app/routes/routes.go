package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quillacademy/api/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	classController *controllers.ClassController,
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	teacherRequestController *controllers.TeacherRequestController,
	assignmentController *controllers.AssignmentController,
	feedbackController *controllers.FeedbackController,
	statsController *controllers.StatsController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Class routes
	classes := v1.Group("/classes")
	{
		classes.GET("", classController.GetAllClasses)
		classes.GET("/recommended", classController.GetRecommendedClasses)
		classes.GET("/category/:category", classController.GetClassesByCategory)
		classes.GET("/teacher/:email", classController.GetClassesByTeacher)
		classes.GET("/:id", classController.GetClassByID)
		classes.GET("/:id/enrollment", classController.GetEnrollment)
		classes.POST("", classController.CreateClass)
		classes.PUT("/:id", classController.ReplaceClass)
		classes.PATCH("/:id", classController.UpdateClassFields)
		classes.PATCH("/:id/status", classController.UpdateClassStatus)
		classes.DELETE("/:id", classController.DeleteClass)
	}

	// User routes
	users := v1.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:email", userController.GetUserRole)
		users.POST("", userController.CreateUser)
		users.PATCH("/:email", userController.UpdateUser)
	}

	// Teacher request routes
	teacherRequests := v1.Group("/teacher-requests")
	{
		teacherRequests.GET("", teacherRequestController.GetAllRequests)
		teacherRequests.POST("", teacherRequestController.CreateRequest)
		teacherRequests.GET("/:email/status", teacherRequestController.GetRequestStatus)
		teacherRequests.PATCH("/:email/status", teacherRequestController.UpdateRequestStatus)
	}

	// Payment and enrollment routes
	payments := v1.Group("/payments")
	{
		payments.POST("", paymentController.CreatePayment)
		payments.GET("/:email", paymentController.GetPaymentsByEmail)
	}
	v1.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
	v1.GET("/enrolled-classes/:email", paymentController.GetEnrolledClasses)

	// Assignment and submission routes
	assignments := v1.Group("/assignments")
	{
		assignments.POST("", assignmentController.CreateAssignment)
		assignments.GET("/:classId", assignmentController.GetAssignmentsByClass)
		assignments.GET("/:classId/count", assignmentController.CountAssignmentsByClass)
	}
	submissions := v1.Group("/submissions")
	{
		submissions.POST("", assignmentController.CreateSubmission)
		submissions.GET("/today/count", assignmentController.CountSubmissionsToday)
	}

	// Feedback routes
	feedback := v1.Group("/feedback")
	{
		feedback.GET("", feedbackController.GetAllFeedback)
		feedback.POST("", feedbackController.CreateFeedback)
	}

	// Stats route
	v1.GET("/stats", statsController.GetStats)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
