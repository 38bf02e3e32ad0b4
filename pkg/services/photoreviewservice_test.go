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

func pendingRecordWithPhotos(photoIDs ...primitive.ObjectID) *models.VerificationRecord {
	record := &models.VerificationRecord{
		ID:     primitive.NewObjectID(),
		Status: models.VerificationStatusPending,
	}
	for _, id := range photoIDs {
		record.Photos = append(record.Photos, models.VerificationPhoto{
			ID:     id,
			URL:    "https://cdn.example.com/" + id.Hex() + ".jpg",
			Status: models.PhotoStatusPending,
		})
	}
	return record
}

func recordWithStatuses(record *models.VerificationRecord, statuses ...models.PhotoStatus) *models.VerificationRecord {
	updated := *record
	updated.Photos = make([]models.VerificationPhoto, len(record.Photos))
	for i, photo := range record.Photos {
		photo.Status = statuses[i]
		updated.Photos[i] = photo
	}
	return &updated
}

func TestReviewPhotosFullOverwrite(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewPhotoReviewService(mockRepo)

	ctx := context.Background()
	photoA := primitive.NewObjectID()
	photoB := primitive.NewObjectID()
	photoC := primitive.NewObjectID()
	record := pendingRecordWithPhotos(photoA, photoB, photoC)
	updated := recordWithStatuses(record, models.PhotoStatusApproved, models.PhotoStatusRejected, models.PhotoStatusApproved)

	mockRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockRepo.On("UpdatePhotosIfPending", ctx, record.ID, mock.AnythingOfType("[]models.VerificationPhoto"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			photos := args.Get(2).([]models.VerificationPhoto)
			assert.Equal(t, models.PhotoStatusApproved, photos[0].Status)
			assert.Equal(t, models.PhotoStatusRejected, photos[1].Status)
			assert.Equal(t, models.PhotoStatusApproved, photos[2].Status)
		}).
		Return(updated, nil)

	result, summary, err := service.ReviewPhotos(ctx, record.ID, []string{photoA.Hex(), photoC.Hex()})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Approved)
	assert.Equal(t, 1, summary.Rejected)
	assert.Equal(t, 0, summary.Pending)
	mockRepo.AssertExpectations(t)
}

func TestReviewPhotosEmptySetRejectsAll(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewPhotoReviewService(mockRepo)

	ctx := context.Background()
	record := pendingRecordWithPhotos(primitive.NewObjectID(), primitive.NewObjectID())
	updated := recordWithStatuses(record, models.PhotoStatusRejected, models.PhotoStatusRejected)

	mockRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockRepo.On("UpdatePhotosIfPending", ctx, record.ID, mock.AnythingOfType("[]models.VerificationPhoto"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			for _, photo := range args.Get(2).([]models.VerificationPhoto) {
				assert.Equal(t, models.PhotoStatusRejected, photo.Status)
			}
		}).
		Return(updated, nil)

	_, summary, err := service.ReviewPhotos(ctx, record.ID, nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Rejected)
	assert.Equal(t, 0, summary.Approved)
	assert.Equal(t, 0, summary.Pending)
}

func TestReviewPhotosUnknownIDsIgnored(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewPhotoReviewService(mockRepo)

	ctx := context.Background()
	photoA := primitive.NewObjectID()
	record := pendingRecordWithPhotos(photoA)
	updated := recordWithStatuses(record, models.PhotoStatusApproved)

	mockRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockRepo.On("UpdatePhotosIfPending", ctx, record.ID, mock.AnythingOfType("[]models.VerificationPhoto"), mock.AnythingOfType("time.Time")).
		Return(updated, nil)

	_, summary, err := service.ReviewPhotos(ctx, record.ID, []string{photoA.Hex(), primitive.NewObjectID().Hex()})

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Approved)
	assert.Equal(t, 0, summary.Rejected)
}

func TestReviewPhotosNotFound(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewPhotoReviewService(mockRepo)

	ctx := context.Background()
	recordID := primitive.NewObjectID()
	mockRepo.On("FindByID", ctx, recordID).Return(nil, nil)

	_, _, err := service.ReviewPhotos(ctx, recordID, nil)

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReviewPhotosAfterFinalization(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewPhotoReviewService(mockRepo)

	ctx := context.Background()
	record := pendingRecordWithPhotos(primitive.NewObjectID())
	record.Status = models.VerificationStatusApproved

	mockRepo.On("FindByID", ctx, record.ID).Return(record, nil)

	_, _, err := service.ReviewPhotos(ctx, record.ID, nil)

	assert.True(t, errors.Is(err, ErrAlreadyFinalized))
	mockRepo.AssertNotCalled(t, "UpdatePhotosIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewPhotosLosesRaceToFinalize(t *testing.T) {
	mockRepo := new(MockVerificationRepository)
	service := NewPhotoReviewService(mockRepo)

	ctx := context.Background()
	record := pendingRecordWithPhotos(primitive.NewObjectID())

	mockRepo.On("FindByID", ctx, record.ID).Return(record, nil)
	mockRepo.On("UpdatePhotosIfPending", ctx, record.ID, mock.AnythingOfType("[]models.VerificationPhoto"), mock.AnythingOfType("time.Time")).Return(nil, nil)

	_, _, err := service.ReviewPhotos(ctx, record.ID, nil)

	assert.True(t, errors.Is(err, ErrAlreadyFinalized))
}
