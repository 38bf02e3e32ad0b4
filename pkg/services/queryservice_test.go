package services

import (
	"context"
	"testing"

	"oruagri-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetByIDNotFound(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	recordID := primitive.NewObjectID()
	mockRepo.On("FindByID", ctx, recordID).Return(nil, nil)

	record, err := service.GetByID(ctx, recordID)

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetByID(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	record := &models.VerificationRecord{ID: primitive.NewObjectID(), RequestID: "OR-REQ-2026-ZZZZZZ"}
	mockRepo.On("FindByID", ctx, record.ID).Return(record, nil)

	found, err := service.GetByID(ctx, record.ID)

	assert.NoError(t, err)
	assert.Equal(t, "OR-REQ-2026-ZZZZZZ", found.RequestID)
}

func TestGetCurrentStatusNoHistory(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	mockRepo.On("FindLatestByOwner", ctx, ownerID).Return(nil, nil)

	status, err := service.GetCurrentStatus(ctx, ownerID)

	assert.NoError(t, err)
	assert.True(t, status.CanSubmit)
	assert.Nil(t, status.Latest)
}

func TestGetCurrentStatusBlocksWhilePending(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	latest := &models.VerificationRecord{Status: models.VerificationStatusPending}
	mockRepo.On("FindLatestByOwner", ctx, ownerID).Return(latest, nil)

	status, err := service.GetCurrentStatus(ctx, ownerID)

	assert.NoError(t, err)
	assert.False(t, status.CanSubmit)
	assert.NotNil(t, status.Latest)
}

func TestGetCurrentStatusBlocksWhenApproved(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	latest := &models.VerificationRecord{Status: models.VerificationStatusApproved}
	mockRepo.On("FindLatestByOwner", ctx, ownerID).Return(latest, nil)

	status, err := service.GetCurrentStatus(ctx, ownerID)

	assert.NoError(t, err)
	assert.False(t, status.CanSubmit)
}

func TestGetCurrentStatusAllowsAfterRejection(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	latest := &models.VerificationRecord{Status: models.VerificationStatusRejected}
	mockRepo.On("FindLatestByOwner", ctx, ownerID).Return(latest, nil)

	status, err := service.GetCurrentStatus(ctx, ownerID)

	assert.NoError(t, err)
	assert.True(t, status.CanSubmit)
	assert.NotNil(t, status.Latest)
}

func TestAdminSearchClampsPaging(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Search", ctx, mock.AnythingOfType("services.SearchFilter"), 1, maxSearchPageSize).
		Return([]models.VerificationRecord{}, int64(0), nil)

	_, _, err := service.AdminSearch(ctx, AdminSearchRequest{Page: -3, PageSize: 5000})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAdminSearchDefaultsPageSize(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Search", ctx, mock.AnythingOfType("services.SearchFilter"), 1, defaultSearchPageSize).
		Return([]models.VerificationRecord{}, int64(0), nil)

	_, _, err := service.AdminSearch(ctx, AdminSearchRequest{})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAdminSearchInvalidStatusFilter(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	_, _, err := service.AdminSearch(context.Background(), AdminSearchRequest{Status: "waiting"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	mockRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminSearchInvalidOwnerFilter(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	_, _, err := service.AdminSearch(context.Background(), AdminSearchRequest{OwnerUserID: "not-a-hex-id"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestAdminSearchEnrichesWithPhotoSummary(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	records := []models.VerificationRecord{
		{
			ID: primitive.NewObjectID(),
			Photos: []models.VerificationPhoto{
				{ID: primitive.NewObjectID(), Status: models.PhotoStatusApproved},
				{ID: primitive.NewObjectID(), Status: models.PhotoStatusPending},
			},
		},
	}
	mockRepo.On("Search", ctx, mock.AnythingOfType("services.SearchFilter"), 1, defaultSearchPageSize).
		Return(records, int64(1), nil)

	results, count, err := service.AdminSearch(ctx, AdminSearchRequest{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, results, 1)
	assert.Equal(t, 2, results[0].PhotoSummary.Total)
	assert.Equal(t, 1, results[0].PhotoSummary.Approved)
	assert.Equal(t, 1, results[0].PhotoSummary.Pending)
}

func TestAdminSearchPassesFilters(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewQueryService(mockRepo, nil)

	ctx := context.Background()
	ownerID := primitive.NewObjectID()

	mockRepo.On("Search", ctx, mock.AnythingOfType("services.SearchFilter"), 2, 10).
		Run(func(args mock.Arguments) {
			filter := args.Get(1).(SearchFilter)
			assert.Equal(t, models.VerificationStatusPending, filter.Status)
			assert.Equal(t, ownerID, *filter.OwnerUserID)
			assert.Equal(t, "turmeric", filter.CropName)
			assert.Equal(t, "Tirunelveli", filter.District)
		}).
		Return([]models.VerificationRecord{}, int64(0), nil)

	_, _, err := service.AdminSearch(ctx, AdminSearchRequest{
		Status:      "pending",
		OwnerUserID: ownerID.Hex(),
		CropName:    "turmeric",
		District:    "Tirunelveli",
		Page:        2,
		PageSize:    10,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
