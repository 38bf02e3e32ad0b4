package controllers

import (
	"context"
	"net/http"

	"oruagri-api-io/api/internal/helpers"
	"oruagri-api-io/api/pkg/models"
	"oruagri-api-io/api/pkg/services"
	"oruagri-api-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	photoReviewService  services.PhotoReviewService
	finalizationService services.FinalizationService
	queryService        services.QueryService
}

// InitReviewController creates the reviewer-facing controller with injected
// services
func InitReviewController(photoReviewService services.PhotoReviewService, finalizationService services.FinalizationService, queryService services.QueryService) *ReviewController {
	return &ReviewController{
		photoReviewService:  photoReviewService,
		finalizationService: finalizationService,
		queryService:        queryService,
	}
}

// ReviewPhotos handles PUT /v1/admin/verifications/:verificationid/photos
// Photo ids absent from approvedPhotoIds are rejected, not left pending.
func (rc *ReviewController) ReviewPhotos() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		recordID, ok := ParseObjectIDParam(c, "verificationid")
		if !ok {
			return
		}

		var reviewRequest models.ReviewPhotosRequest
		if !BindJSONAndValidate(c, &reviewRequest) {
			return
		}

		record, summary, err := rc.photoReviewService.ReviewPhotos(ctx, recordID, reviewRequest.ApprovedPhotoIDs)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "Photo review saved", record, gin.H{
			"photoSummary": summary,
		})
	}
}

// FinalizeVerification handles PUT /v1/admin/verifications/:verificationid/finalize
func (rc *ReviewController) FinalizeVerification() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		recordID, ok := ParseObjectIDParam(c, "verificationid")
		if !ok {
			return
		}

		var finalizeRequest models.FinalizeVerificationRequest
		if !BindJSONAndValidate(c, &finalizeRequest) {
			return
		}

		record, err := rc.finalizationService.Finalize(ctx, recordID, finalizeRequest)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		go func() {
			if err := rc.queryService.InvalidateStatusCache(context.Background(), record.OwnerUserID); err != nil {
				util.LogError("Failed to invalidate status cache", err)
			}
		}()

		util.HandleSuccess(c, http.StatusOK, "Verification request finalized", record)
	}
}

// UpdateLocationType handles PUT /v1/admin/verifications/:verificationid/location-type
func (rc *ReviewController) UpdateLocationType() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		recordID, ok := ParseObjectIDParam(c, "verificationid")
		if !ok {
			return
		}

		var updateRequest models.UpdateLocationTypeRequest
		if !BindJSONAndValidate(c, &updateRequest) {
			return
		}

		record, err := rc.finalizationService.SetLocationType(ctx, recordID, models.LocationType(updateRequest.LocationType))
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Location type updated", record)
	}
}

// SearchVerifications handles GET /v1/admin/verifications
func (rc *ReviewController) SearchVerifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		searchArgs := helpers.GetSearchArgs(c)

		records, count, err := rc.queryService.AdminSearch(ctx, searchArgs)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", records, gin.H{
			"pagination": util.Pagination{
				Limit: searchArgs.PageSize,
				Skip:  (searchArgs.Page - 1) * searchArgs.PageSize,
				Count: count,
			},
		})
	}
}
