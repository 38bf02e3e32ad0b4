package services

import (
	"context"
	"sync"
	"time"

	"oruagri-api-io/api/pkg/models"
	"oruagri-api-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type submissionService struct {
	repo     VerificationRepository
	crops    CropDirectory
	media    MediaStore
	identity RequestIdentity
	now      func() time.Time
}

func NewSubmissionService(repo VerificationRepository, crops CropDirectory, media MediaStore, identity RequestIdentity) SubmissionService {
	return &submissionService{
		repo:     repo,
		crops:    crops,
		media:    media,
		identity: identity,
		now:      time.Now,
	}
}

// Submit runs the whole creation pipeline: validation, crop lookup, the
// duplicate-request guard against the owner's latest record, photo uploads
// and the insert. Nothing is persisted unless every step succeeds.
func (ss *submissionService) Submit(ctx context.Context, req models.SubmitVerificationRequest, photos []models.File) (*models.VerificationRecord, error) {
	if req.CropID == "" {
		return nil, errors.Wrap(ErrInvalidInput, "cropId is required")
	}
	if len(photos) < models.MinPhotosPerRequest || len(photos) > models.MaxPhotosPerRequest {
		return nil, errors.Wrapf(ErrInvalidInput, "between %d and %d photos required", models.MinPhotosPerRequest, models.MaxPhotosPerRequest)
	}

	cropID, err := primitive.ObjectIDFromHex(req.CropID)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidInput, "invalid cropId")
	}

	crop, err := ss.crops.Lookup(ctx, cropID)
	if err != nil {
		return nil, err
	}

	// History is per owner across all crops: one live request at a time.
	latest, err := ss.repo.FindLatestByOwner(ctx, crop.UserID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		switch latest.Status {
		case models.VerificationStatusPending:
			return nil, errors.Wrap(ErrConflict, "a verification request is already under review")
		case models.VerificationStatusApproved:
			return nil, errors.Wrap(ErrConflict, "crop is already verified")
		}
	}

	if req.Longitude == nil || req.Latitude == nil {
		return nil, errors.Wrap(ErrInvalidInput, "location coordinates are required")
	}

	uploads, err := ss.uploadPhotos(ctx, photos, crop.CropName)
	if err != nil {
		return nil, err
	}

	requestID, err := ss.identity.Generate(ctx)
	if err != nil {
		ss.removeUploads(ctx, uploads)
		return nil, err
	}

	now := ss.now()
	record := &models.VerificationRecord{
		ID:          primitive.NewObjectID(),
		RequestID:   requestID,
		OwnerUserID: crop.UserID,
		CropID:      crop.ID,
		CropName:    crop.CropName,
		FullName:    pickNonEmpty(req.FullName, crop.FullName),
		Phone:       pickNonEmpty(req.Phone, crop.Phone),
		Village:     pickNonEmpty(req.Village, crop.Village),
		Taluk:       pickNonEmpty(req.Taluk, crop.Taluk),
		District:    pickNonEmpty(req.District, crop.District),
		Quantity:    pickNonEmpty(req.Quantity, crop.Quantity),
		Variety:     pickNonEmpty(req.Variety, crop.Variety),
		Moisture:    pickNonEmpty(req.Moisture, crop.Moisture),
		WillDry:     pickNonEmpty(req.WillDry, crop.WillDry),
		Status:      models.VerificationStatusPending,
		Location: models.VerificationLocation{
			Longitude: *req.Longitude,
			Latitude:  *req.Latitude,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, upload := range uploads {
		record.Photos = append(record.Photos, models.VerificationPhoto{
			ID:       primitive.NewObjectID(),
			URL:      upload.Url,
			PublicID: upload.PublicId,
			Status:   models.PhotoStatusPending,
		})
	}

	if err := ss.repo.Insert(ctx, record); err != nil {
		ss.removeUploads(ctx, uploads)
		return nil, err
	}

	return record, nil
}

// uploadPhotos pushes every photo to the media store concurrently. A single
// failure fails the whole submission; order of the result matches the input.
func (ss *submissionService) uploadPhotos(ctx context.Context, photos []models.File, hint string) ([]models.Url, error) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	uploads := make([]models.Url, len(photos))

	for i, photo := range photos {
		wg.Add(1)
		go func(index int, file models.File) {
			defer wg.Done()

			upload, err := ss.media.Put(ctx, file, hint)
			if err != nil {
				mu.Lock()
				errs = append(errs, errors.Wrapf(err, "photo %d", index))
				mu.Unlock()
				return
			}

			mu.Lock()
			uploads[index] = upload
			mu.Unlock()
		}(i, photo)
	}

	wg.Wait()

	if len(errs) > 0 {
		ss.removeUploads(ctx, uploads)
		return nil, errs[0]
	}

	return uploads, nil
}

// removeUploads is the best-effort rollback for assets uploaded before a
// later step failed.
func (ss *submissionService) removeUploads(ctx context.Context, uploads []models.Url) {
	for _, upload := range uploads {
		if upload.PublicId == "" {
			continue
		}
		if err := ss.media.Remove(ctx, upload.PublicId); err != nil {
			util.LogError("failed to remove orphaned upload "+upload.PublicId, err)
		}
	}
}

func pickNonEmpty(override, fallback string) string {
	if override == "" {
		return fallback
	}
	return override
}
