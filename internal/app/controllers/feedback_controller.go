package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/middleware"
)

// FeedbackController handles feedback operations
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// GetAllFeedback lists every feedback document
// @Summary List all feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} object "Feedback documents"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [get]
func (c *FeedbackController) GetAllFeedback(ctx *gin.Context) {
	feedback, err := c.feedbackService.GetAllFeedback(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// CreateFeedback appends a feedback document
// @Summary Create feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body object true "Feedback document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) CreateFeedback(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.feedbackService.CreateFeedback(ctx.Request.Context(), doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
