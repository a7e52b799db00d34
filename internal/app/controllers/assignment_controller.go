package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/middleware"
	"github.com/quillacademy/api/internal/pkg/apperrors"
)

// AssignmentController handles assignment and submission operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// CreateAssignment stores an assignment verbatim
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body object true "Assignment document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.assignmentService.CreateAssignment(ctx.Request.Context(), doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAssignmentsByClass lists the assignments of a class
// @Summary List assignments by class
// @Tags assignments
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {array} object "Assignments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{classId} [get]
func (c *AssignmentController) GetAssignmentsByClass(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsByClass(ctx.Request.Context(), ctx.Param("classId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// CountAssignmentsByClass counts the assignments of a class
// @Summary Count assignments by class
// @Tags assignments
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} dto.CountResponse "Assignment count"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{classId}/count [get]
func (c *AssignmentController) CountAssignmentsByClass(ctx *gin.Context) {
	count, err := c.assignmentService.CountAssignmentsByClass(ctx.Request.Context(), ctx.Param("classId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, count)
}

// CreateSubmission stores an assignment submission. A repeat submission for
// the same (student_email, assignmentId) pair answers 200 with a message
// field, per the legacy contract.
// @Summary Submit an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body object true "Submission document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment, or duplicate message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (c *AssignmentController) CreateSubmission(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.assignmentService.CreateSubmission(ctx.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionAlreadyExists) {
			ctx.JSON(http.StatusOK, dto.DuplicateResponse{Message: "already submitted", InsertedID: nil})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CountSubmissionsToday counts submissions made on the current date
// @Summary Count today's submissions
// @Tags assignments
// @Produce json
// @Success 200 {object} dto.CountResponse "Submission count"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions/today/count [get]
func (c *AssignmentController) CountSubmissionsToday(ctx *gin.Context) {
	count, err := c.assignmentService.CountSubmissionsToday(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, count)
}
