package routers

import (
	"oruagri-api-io/api/internal/container"
	"oruagri-api-io/api/internal/middleware"
	"oruagri-api-io/api/pkg/controllers"

	"github.com/gin-gonic/gin"
)

// InitRoute creates a new Gin router with service layer architecture
func InitRoute() *gin.Engine {
	serviceContainer := container.NewServiceContainer()
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/v1", middleware.OruAgriRateLimiter())
	{
		api.GET("/ping", controllers.Ping)

		verificationRoutes(api, serviceContainer)
		adminRoutes(api, serviceContainer)
	}

	return router
}

// verificationRoutes configures farmer-facing verification endpoints
func verificationRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	verificationController := serviceContainer.GetVerificationController()

	verification := api.Group("/verifications")
	verification.POST("", verificationController.SubmitVerification())
	verification.GET("/:verificationid", verificationController.GetVerification())

	user := api.Group("/users")
	user.GET("/:userid/verifications", verificationController.GetUserVerifications())
	user.GET("/:userid/verifications/status", verificationController.GetUserVerificationStatus())
}

// adminRoutes configures reviewer endpoints
func adminRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	reviewController := serviceContainer.GetReviewController()

	admin := api.Group("/admin/verifications")
	admin.GET("", reviewController.SearchVerifications())
	admin.PUT("/:verificationid/photos", reviewController.ReviewPhotos())
	admin.PUT("/:verificationid/finalize", reviewController.FinalizeVerification())
	admin.PUT("/:verificationid/location-type", reviewController.UpdateLocationType())
}
