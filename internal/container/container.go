package container

import (
	"oruagri-api-io/api/internal/common"
	"oruagri-api-io/api/pkg/controllers"
	"oruagri-api-io/api/pkg/services"
	"oruagri-api-io/api/pkg/util"
)

type ServiceContainer struct {
	SubmissionService   services.SubmissionService
	PhotoReviewService  services.PhotoReviewService
	FinalizationService services.FinalizationService
	QueryService        services.QueryService

	VerificationController *controllers.VerificationController
	ReviewController       *controllers.ReviewController
}

func NewServiceContainer() *ServiceContainer {
	repository := services.NewVerificationRepository(common.VerificationCollection)
	cropDirectory := services.NewCropDirectory(common.CropCollection)
	mediaStore := services.NewMediaStore()
	requestIdentity := services.NewRequestIdentity(repository)

	submissionService := services.NewSubmissionService(repository, cropDirectory, mediaStore, requestIdentity)
	photoReviewService := services.NewPhotoReviewService(repository)
	finalizationService := services.NewFinalizationService(repository)
	queryService := services.NewQueryService(repository, util.REDIS())

	verificationController := controllers.InitVerificationController(submissionService, queryService)
	reviewController := controllers.InitReviewController(photoReviewService, finalizationService, queryService)

	return &ServiceContainer{
		SubmissionService:   submissionService,
		PhotoReviewService:  photoReviewService,
		FinalizationService: finalizationService,
		QueryService:        queryService,

		VerificationController: verificationController,
		ReviewController:       reviewController,
	}
}

// GetVerificationController returns the verification controller instance
func (sc *ServiceContainer) GetVerificationController() *controllers.VerificationController {
	return sc.VerificationController
}

// GetReviewController returns the review controller instance
func (sc *ServiceContainer) GetReviewController() *controllers.ReviewController {
	return sc.ReviewController
}
