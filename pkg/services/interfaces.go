package services

import (
	"context"
	"time"

	"oruagri-api-io/api/pkg/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionService decides whether a new verification request may be created
// and assembles the record from the submission plus crop-directory attributes.
type SubmissionService interface {
	Submit(ctx context.Context, req models.SubmitVerificationRequest, photos []models.File) (*models.VerificationRecord, error)
}

// PhotoReviewService applies per-photo accept/reject decisions to a pending
// record. Each call is a full overwrite of every photo status.
type PhotoReviewService interface {
	ReviewPhotos(ctx context.Context, recordID primitive.ObjectID, approvedPhotoIDs []string) (*models.VerificationRecord, models.PhotoSummary, error)
}

// FinalizationService applies the terminal approve/reject decision and owns
// the standalone location-type repair path.
type FinalizationService interface {
	Finalize(ctx context.Context, recordID primitive.ObjectID, req models.FinalizeVerificationRequest) (*models.VerificationRecord, error)
	SetLocationType(ctx context.Context, recordID primitive.ObjectID, locationType models.LocationType) (*models.VerificationRecord, error)
}

// AdminSearchRequest carries the admin list filters. Identifier filters are
// exact, name/place filters are case-insensitive substrings, dates are
// inclusive UTC day boundaries.
type AdminSearchRequest struct {
	Status      string
	OwnerUserID string
	CropID      string
	Phone       string
	FullName    string
	CropName    string
	Village     string
	Taluk       string
	District    string
	FromDate    *time.Time
	ToDate      *time.Time
	Sort        string
	Page        int
	PageSize    int
}

// QueryService is the read side: lookups, the canSubmit reduction and the
// admin search.
type QueryService interface {
	GetByID(ctx context.Context, recordID primitive.ObjectID) (*models.VerificationRecord, error)
	ListByOwner(ctx context.Context, ownerUserID primitive.ObjectID) ([]models.VerificationRecord, error)
	GetCurrentStatus(ctx context.Context, ownerUserID primitive.ObjectID) (*models.CurrentStatus, error)
	AdminSearch(ctx context.Context, req AdminSearchRequest) ([]models.AdminVerificationRecord, int64, error)
	InvalidateStatusCache(ctx context.Context, ownerUserID primitive.ObjectID) error
}

// RequestIdentity produces collision-checked human-readable request codes.
type RequestIdentity interface {
	Generate(ctx context.Context) (string, error)
}

// CropDirectory is the external system of record for crop/farm/owner
// attributes, keyed by crop id.
type CropDirectory interface {
	Lookup(ctx context.Context, cropID primitive.ObjectID) (*models.CropProfile, error)
}

// MediaStore stores image bytes and returns a durable URL plus the provider
// id needed for later removal.
type MediaStore interface {
	Put(ctx context.Context, file models.File, hint string) (models.Url, error)
	Remove(ctx context.Context, publicID string) error
}
