package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quillacademy/api/internal/app/models/dto"
)

// parseObjectID parses a route parameter into an object id. A malformed
// identifier answers with 400 rather than surfacing a store-level failure.
func parseObjectID(ctx *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(param))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidObjectID, "Identifier is not a valid object id")
		errorDetail = errorDetail.WithDetails("expected a 24 character hex string")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindDocument binds an arbitrary JSON body into a raw document. A body that
// is not a JSON object answers with 400.
func bindDocument(ctx *gin.Context, doc interface{}) bool {
	if err := ctx.ShouldBindJSON(doc); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
