package helpers

import (
	"strconv"
	"time"

	"oruagri-api-io/api/pkg/services"

	"github.com/gin-gonic/gin"
)

// GetSearchArgs extracts the admin search filters from query parameters.
// Dates use YYYY-MM-DD and are interpreted as UTC day boundaries.
func GetSearchArgs(c *gin.Context) services.AdminSearchRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	req := services.AdminSearchRequest{
		Status:      c.Query("status"),
		OwnerUserID: c.Query("ownerUserId"),
		CropID:      c.Query("cropId"),
		Phone:       c.Query("phone"),
		FullName:    c.Query("fullName"),
		CropName:    c.Query("cropName"),
		Village:     c.Query("village"),
		Taluk:       c.Query("taluk"),
		District:    c.Query("district"),
		Sort:        c.DefaultQuery("sort", "created_at_desc"),
		Page:        page,
		PageSize:    pageSize,
	}

	if from, err := time.ParseInLocation("2006-01-02", c.Query("fromDate"), time.UTC); err == nil {
		req.FromDate = &from
	}
	if to, err := time.ParseInLocation("2006-01-02", c.Query("toDate"), time.UTC); err == nil {
		req.ToDate = &to
	}

	return req
}
