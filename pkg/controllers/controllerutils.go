package controllers

import (
	"context"
	"log"
	"net/http"

	"oruagri-api-io/api/internal/common"
	"oruagri-api-io/api/pkg/services"
	"oruagri-api-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithTimeout creates a context with the standard request timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}

// ParseObjectIDParam parses an ObjectID from URL parameter and handles errors
func ParseObjectIDParam(c *gin.Context, paramName string) (primitive.ObjectID, bool) {
	objectID, err := primitive.ObjectIDFromHex(c.Param(paramName))
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, errors.Wrapf(err, "invalid %s", paramName))
		return primitive.NilObjectID, false
	}
	return objectID, true
}

// BindJSONAndValidate binds JSON and handles validation errors
func BindJSONAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		log.Printf("JSON binding error: %v", err)
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	if err := common.Validate.Struct(obj); err != nil {
		log.Printf("Validation error: %v", err)
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	return true
}

// statusForError maps service error kinds to HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrAlreadyFinalized):
		return http.StatusConflict
	case errors.Is(err, services.ErrUploadFailed), errors.Is(err, services.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError writes the HTTP response for a service failure
func HandleServiceError(c *gin.Context, err error) {
	util.HandleError(c, statusForError(err), err)
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
