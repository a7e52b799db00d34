package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/middleware"
)

// TeacherRequestController handles teacher-request operations
type TeacherRequestController struct {
	requestService services.TeacherRequestService
}

// NewTeacherRequestController creates a new TeacherRequestController
func NewTeacherRequestController(requestService services.TeacherRequestService) *TeacherRequestController {
	return &TeacherRequestController{
		requestService: requestService,
	}
}

// GetAllRequests lists every teacher request
// @Summary List all teacher requests
// @Tags teacher-requests
// @Produce json
// @Success 200 {array} object "Teacher requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher-requests [get]
func (c *TeacherRequestController) GetAllRequests(ctx *gin.Context) {
	requests, err := c.requestService.GetAllRequests(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// CreateRequest stores a teacher request verbatim
// @Summary Create a teacher request
// @Tags teacher-requests
// @Accept json
// @Produce json
// @Param request body object true "Request document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher-requests [post]
func (c *TeacherRequestController) CreateRequest(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.requestService.CreateRequest(ctx.Request.Context(), doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetRequestStatus projects the status of a teacher request
// @Summary Get teacher request status
// @Tags teacher-requests
// @Produce json
// @Param email path string true "Applicant email"
// @Success 200 {object} map[string]string "Status projection, or null when absent"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher-requests/{email}/status [get]
func (c *TeacherRequestController) GetRequestStatus(ctx *gin.Context) {
	status, err := c.requestService.GetRequestStatus(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

// UpdateRequestStatus sets the status of a teacher request in place
// @Summary Update teacher request status
// @Tags teacher-requests
// @Accept json
// @Produce json
// @Param email path string true "Applicant email"
// @Param request body dto.StatusRequest true "New status"
// @Success 200 {object} dto.UpdateResult "Update acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher-requests/{email}/status [patch]
func (c *TeacherRequestController) UpdateRequestStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if !bindDocument(ctx, &req) {
		return
	}

	result, err := c.requestService.UpdateRequestStatus(ctx.Request.Context(), ctx.Param("email"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
