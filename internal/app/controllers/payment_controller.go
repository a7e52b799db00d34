package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/middleware"
)

// PaymentController handles payment, enrollment and payment-intent operations
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePayment appends a payment document, which doubles as the enrollment
// record for its classId and email.
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body object true "Payment document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [post]
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.paymentService.CreatePayment(ctx.Request.Context(), doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetPaymentsByEmail lists the classId projections of a student's payments
// @Summary List payments by email
// @Tags payments
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {array} object "classId projections"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/{email} [get]
func (c *PaymentController) GetPaymentsByEmail(ctx *gin.Context) {
	payments, err := c.paymentService.GetPaymentClassIDs(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payments)
}

// GetEnrolledClasses lists the classes a student is enrolled in, derived from
// their payment records at query time.
// @Summary List enrolled classes
// @Tags payments
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {array} models.Class "Enrolled classes"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolled-classes/{email} [get]
func (c *PaymentController) GetEnrolledClasses(ctx *gin.Context) {
	classes, err := c.paymentService.GetEnrolledClasses(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// CreatePaymentIntent creates a processor payment intent for the given price
// @Summary Create a payment intent
// @Description Converts the decimal price to integer minor units and requests a card payment intent in USD
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.PaymentIntentRequest true "Class price"
// @Success 200 {object} dto.PaymentIntentResponse "Client secret"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Payment gateway error"
// @Router /create-payment-intent [post]
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var req dto.PaymentIntentRequest
	if !bindDocument(ctx, &req) {
		return
	}

	result, err := c.paymentService.CreatePaymentIntent(ctx.Request.Context(), req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
