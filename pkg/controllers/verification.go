package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"oruagri-api-io/api/internal/common"
	"oruagri-api-io/api/internal/helpers"
	"oruagri-api-io/api/pkg/models"
	"oruagri-api-io/api/pkg/services"
	"oruagri-api-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type VerificationController struct {
	submissionService services.SubmissionService
	queryService      services.QueryService
}

// InitVerificationController creates the farmer-facing controller with
// injected services
func InitVerificationController(submissionService services.SubmissionService, queryService services.QueryService) *VerificationController {
	return &VerificationController{
		submissionService: submissionService,
		queryService:      queryService,
	}
}

// SubmitVerification handles POST /v1/verifications
// Multipart form: "data" JSON part plus 1-3 "photos" files.
func (vc *VerificationController) SubmitVerification() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		data := c.PostForm("data")
		if common.IsEmptyString(data) {
			util.HandleError(c, http.StatusBadRequest, errors.New("missing data form field"))
			return
		}

		var submitRequest models.SubmitVerificationRequest
		if err := json.Unmarshal([]byte(data), &submitRequest); err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		if err := common.Validate.Struct(&submitRequest); err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		photos, closePhotos, err := helpers.CollectPhotoFiles(c)
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}
		defer closePhotos()

		record, err := vc.submissionService.Submit(ctx, submitRequest, photos)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		go func() {
			if err := vc.queryService.InvalidateStatusCache(context.Background(), record.OwnerUserID); err != nil {
				util.LogError("Failed to invalidate status cache", err)
			}
		}()

		util.HandleSuccess(c, http.StatusCreated, "Verification request submitted", record)
	}
}

// GetVerification handles GET /v1/verifications/:verificationid
func (vc *VerificationController) GetVerification() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		recordID, ok := ParseObjectIDParam(c, "verificationid")
		if !ok {
			return
		}

		record, err := vc.queryService.GetByID(ctx, recordID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", record)
	}
}

// GetUserVerifications handles GET /v1/users/:userid/verifications
func (vc *VerificationController) GetUserVerifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		ownerID, ok := ParseObjectIDParam(c, "userid")
		if !ok {
			return
		}

		records, err := vc.queryService.ListByOwner(ctx, ownerID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", records, gin.H{
			"count": len(records),
		})
	}
}

// GetUserVerificationStatus handles GET /v1/users/:userid/verifications/status
func (vc *VerificationController) GetUserVerificationStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		ownerID, ok := ParseObjectIDParam(c, "userid")
		if !ok {
			return
		}

		status, err := vc.queryService.GetCurrentStatus(ctx, ownerID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", status)
	}
}
