package services

import (
	"context"
	"time"

	"oruagri-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type finalizationService struct {
	repo VerificationRepository
	now  func() time.Time
}

func NewFinalizationService(repo VerificationRepository) FinalizationService {
	return &finalizationService{
		repo: repo,
		now:  time.Now,
	}
}

// Finalize applies the terminal approve/reject decision. Preconditions are
// checked in a fixed order so callers get the most specific failure; the
// actual write is conditional on the record still being pending.
func (fs *finalizationService) Finalize(ctx context.Context, recordID primitive.ObjectID, req models.FinalizeVerificationRequest) (*models.VerificationRecord, error) {
	decision := models.VerificationStatus(req.Decision)
	if decision != models.VerificationStatusApproved && decision != models.VerificationStatusRejected {
		return nil, errors.Wrap(ErrInvalidInput, "decision must be approved or rejected")
	}

	if decision == models.VerificationStatusRejected && !models.IsValidRejectionReason(req.RejectionReason) {
		return nil, errors.Wrap(ErrInvalidInput, "a valid rejection reason is required")
	}

	locationType := models.LocationType(req.LocationType)
	if decision == models.VerificationStatusApproved && req.LocationType == "" {
		return nil, errors.Wrap(ErrInvalidInput, "locationType is required for approval")
	}
	if req.LocationType != "" && !models.IsValidLocationType(locationType) {
		return nil, errors.Wrap(ErrInvalidInput, "locationType must be farm or village")
	}

	record, err := fs.repo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrap(ErrNotFound, "verification request not found")
	}
	if record.Status != models.VerificationStatusPending {
		return nil, errors.Wrap(ErrAlreadyFinalized, "verification request is already decided")
	}

	if decision == models.VerificationStatusApproved && record.SummarizePhotos().Approved == 0 {
		return nil, errors.Wrap(ErrConflict, "approval requires at least one approved photo")
	}

	update := FinalizeUpdate{
		Status:     decision,
		ReviewedAt: fs.now(),
		ReviewedBy: req.ReviewerID,
	}
	if decision == models.VerificationStatusRejected {
		update.RejectionReason = req.RejectionReason
		update.RejectionNotes = req.RejectionNotes
	}
	if decision == models.VerificationStatusApproved {
		update.LocationType = locationType
	}

	updated, err := fs.repo.FinalizeIfPending(ctx, recordID, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// a concurrent finalize won the conditional update
		return nil, errors.Wrap(ErrAlreadyFinalized, "verification request is already decided")
	}

	return updated, nil
}

// SetLocationType is the standalone repair path: no status guard, any record
// can be reclassified.
func (fs *finalizationService) SetLocationType(ctx context.Context, recordID primitive.ObjectID, locationType models.LocationType) (*models.VerificationRecord, error) {
	if !models.IsValidLocationType(locationType) {
		return nil, errors.Wrap(ErrInvalidInput, "locationType must be farm or village")
	}

	updated, err := fs.repo.SetLocationType(ctx, recordID, locationType, fs.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.Wrap(ErrNotFound, "verification request not found")
	}

	return updated, nil
}
