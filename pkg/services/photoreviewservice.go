package services

import (
	"context"
	"time"

	"oruagri-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type photoReviewService struct {
	repo VerificationRepository
	now  func() time.Time
}

func NewPhotoReviewService(repo VerificationRepository) PhotoReviewService {
	return &photoReviewService{
		repo: repo,
		now:  time.Now,
	}
}

// ReviewPhotos overwrites every photo status: approved when its id is in the
// set, rejected otherwise. Omitted ids are rejected, never left pending.
func (ps *photoReviewService) ReviewPhotos(ctx context.Context, recordID primitive.ObjectID, approvedPhotoIDs []string) (*models.VerificationRecord, models.PhotoSummary, error) {
	record, err := ps.repo.FindByID(ctx, recordID)
	if err != nil {
		return nil, models.PhotoSummary{}, err
	}
	if record == nil {
		return nil, models.PhotoSummary{}, errors.Wrap(ErrNotFound, "verification request not found")
	}
	if record.Status != models.VerificationStatusPending {
		return nil, models.PhotoSummary{}, errors.Wrap(ErrAlreadyFinalized, "photo review is only allowed before the final decision")
	}

	approved := make(map[string]struct{}, len(approvedPhotoIDs))
	for _, id := range approvedPhotoIDs {
		approved[id] = struct{}{}
	}

	photos := make([]models.VerificationPhoto, len(record.Photos))
	for i, photo := range record.Photos {
		photo.Status = models.PhotoStatusRejected
		if _, ok := approved[photo.ID.Hex()]; ok {
			photo.Status = models.PhotoStatusApproved
		}
		photos[i] = photo
	}

	updated, err := ps.repo.UpdatePhotosIfPending(ctx, recordID, photos, ps.now())
	if err != nil {
		return nil, models.PhotoSummary{}, err
	}
	if updated == nil {
		// finalized between the read and the conditional write
		return nil, models.PhotoSummary{}, errors.Wrap(ErrAlreadyFinalized, "photo review is only allowed before the final decision")
	}

	return updated, updated.SummarizePhotos(), nil
}
