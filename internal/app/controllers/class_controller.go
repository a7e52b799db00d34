package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/middleware"
)

// ClassController handles class-related operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// GetAllClasses lists every class
// @Summary List all classes
// @Description Retrieves all class documents
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class "Classes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// GetRecommendedClasses lists the most-enrolled classes
// @Summary Recommended classes
// @Description Retrieves the six classes with the highest enrollment
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class "Recommended classes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/recommended [get]
func (c *ClassController) GetRecommendedClasses(ctx *gin.Context) {
	classes, err := c.classService.GetRecommendedClasses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// GetClassesByCategory lists classes in a category
// @Summary List classes by category
// @Tags classes
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} models.Class "Classes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/category/{category} [get]
func (c *ClassController) GetClassesByCategory(ctx *gin.Context) {
	classes, err := c.classService.GetClassesByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// GetClassesByTeacher lists classes published by a teacher
// @Summary List classes by teacher email
// @Tags classes
// @Produce json
// @Param email path string true "Teacher email"
// @Success 200 {array} models.Class "Classes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/teacher/{email} [get]
func (c *ClassController) GetClassesByTeacher(ctx *gin.Context) {
	classes, err := c.classService.GetClassesByTeacher(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// GetClassByID retrieves a single class. A miss answers 200 with a null body;
// callers distinguish absence by value, not status.
// @Summary Get class details
// @Tags classes
// @Produce json
// @Param id path string true "Class ID" minlength(24) maxlength(24)
// @Success 200 {object} models.Class "Class document, or null when absent"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [get]
func (c *ClassController) GetClassByID(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	class, err := c.classService.GetClassByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, class)
}

// GetEnrollment projects the enrollment count of a class
// @Summary Get class enrollment count
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} map[string]int64 "Enrollment projection"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/enrollment [get]
func (c *ClassController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.classService.GetEnrollment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// CreateClass stores a new class
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body models.Class true "Class document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.classService.CreateClass(ctx.Request.Context(), doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ReplaceClass writes the fixed replaceable field subset. Fields outside the
// subset are dropped; a missing class is upserted.
// @Summary Replace a class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param request body dto.ReplaceClassRequest true "Replaceable fields"
// @Success 200 {object} dto.UpdateResult "Update acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [put]
func (c *ClassController) ReplaceClass(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	var fields dto.ReplaceClassRequest
	if !bindDocument(ctx, &fields) {
		return
	}

	result, err := c.classService.ReplaceClass(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UpdateClassFields applies a caller-supplied partial update
// @Summary Update class fields
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param request body object true "Fields to set"
// @Success 200 {object} dto.UpdateResult "Update acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [patch]
func (c *ClassController) UpdateClassFields(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	var fields bson.M
	if !bindDocument(ctx, &fields) {
		return
	}

	result, err := c.classService.UpdateClassFields(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UpdateClassStatus sets the status of a class
// @Summary Update class status
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param request body dto.StatusRequest true "New status"
// @Success 200 {object} dto.UpdateResult "Update acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/status [patch]
func (c *ClassController) UpdateClassStatus(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	var req dto.StatusRequest
	if !bindDocument(ctx, &req) {
		return
	}

	result, err := c.classService.UpdateClassStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteClass removes a class. No cascade: related payments, assignments and
// submissions survive.
// @Summary Delete a class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} dto.DeleteResult "Delete acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	result, err := c.classService.DeleteClass(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
