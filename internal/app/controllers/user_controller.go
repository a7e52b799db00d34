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

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers lists every user
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUserRole projects the role of a user. A miss answers 200 with null.
// @Summary Get user role
// @Description Retrieves the role projection of the user with the given email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]string "Role projection, or null when absent"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [get]
func (c *UserController) GetUserRole(ctx *gin.Context) {
	role, err := c.userService.GetUserRole(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, role)
}

// CreateUser stores a new user. A duplicate email answers 200 with a message
// field and a null insertedId, per the legacy contract.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.User true "User document"
// @Success 200 {object} dto.InsertResult "Insert acknowledgment, or duplicate message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var doc bson.M
	if !bindDocument(ctx, &doc) {
		return
	}

	result, err := c.userService.CreateUser(ctx.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			ctx.JSON(http.StatusOK, dto.DuplicateResponse{Message: "user already exists", InsertedID: nil})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UpdateUser applies a caller-supplied partial update to a user
// @Summary Update user fields
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body object true "Fields to set"
// @Success 200 {object} dto.UpdateResult "Update acknowledgment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var fields bson.M
	if !bindDocument(ctx, &fields) {
		return
	}

	result, err := c.userService.UpdateUserByEmail(ctx.Request.Context(), ctx.Param("email"), fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
