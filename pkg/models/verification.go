package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinPhotosPerRequest = 1
	MaxPhotosPerRequest = 3
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

type PhotoStatus string

const (
	PhotoStatusPending  PhotoStatus = "pending"
	PhotoStatusApproved PhotoStatus = "approved"
	PhotoStatusRejected PhotoStatus = "rejected"
)

type LocationType string

const (
	LocationTypeFarm    LocationType = "farm"
	LocationTypeVillage LocationType = "village"
)

func IsValidLocationType(lt LocationType) bool {
	return lt == LocationTypeFarm || lt == LocationTypeVillage
}

// Rejection reasons reviewers can pick from. Closed set; "other" is the
// catch-all paired with free-text notes.
const (
	RejectionReasonPhotosUnclear       = "photos-unclear"
	RejectionReasonPhotosMismatch      = "photos-mismatch"
	RejectionReasonCropNotVisible      = "crop-not-visible"
	RejectionReasonLocationMismatch    = "location-mismatch"
	RejectionReasonQuantityImplausible = "quantity-implausible"
	RejectionReasonDuplicateRequest    = "duplicate-request"
	RejectionReasonIncompleteDetails   = "incomplete-details"
	RejectionReasonCropTooEarly        = "crop-too-early"
	RejectionReasonSuspectedFraud      = "suspected-fraud"
	RejectionReasonOther               = "other"
)

var RejectionReasons = []string{
	RejectionReasonPhotosUnclear,
	RejectionReasonPhotosMismatch,
	RejectionReasonCropNotVisible,
	RejectionReasonLocationMismatch,
	RejectionReasonQuantityImplausible,
	RejectionReasonDuplicateRequest,
	RejectionReasonIncompleteDetails,
	RejectionReasonCropTooEarly,
	RejectionReasonSuspectedFraud,
	RejectionReasonOther,
}

func IsValidRejectionReason(reason string) bool {
	for _, r := range RejectionReasons {
		if r == reason {
			return true
		}
	}
	return false
}

type VerificationPhoto struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	URL      string             `bson:"url" json:"url" validate:"required"`
	PublicID string             `bson:"public_id,omitempty" json:"-"`
	Status   PhotoStatus        `bson:"status" json:"status"`
}

type VerificationLocation struct {
	Longitude    float64      `bson:"longitude" json:"longitude"`
	Latitude     float64      `bson:"latitude" json:"latitude"`
	LocationType LocationType `bson:"location_type,omitempty" json:"locationType,omitempty"`
}

type VerificationRecord struct {
	CreatedAt       time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updatedAt"`
	ReviewedAt      *time.Time           `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
	RequestID       string               `bson:"request_id" json:"requestId"`
	CropName        string               `bson:"crop_name" json:"cropName"`
	FullName        string               `bson:"full_name" json:"fullName"`
	Phone           string               `bson:"phone" json:"phone"`
	Village         string               `bson:"village" json:"village"`
	Taluk           string               `bson:"taluk" json:"taluk"`
	District        string               `bson:"district" json:"district"`
	Quantity        string               `bson:"quantity" json:"quantity"`
	Variety         string               `bson:"variety" json:"variety"`
	Moisture        string               `bson:"moisture" json:"moisture"`
	WillDry         string               `bson:"will_dry" json:"willDry"`
	ReviewedBy      string               `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`
	RejectionReason string               `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	RejectionNotes  string               `bson:"rejection_notes,omitempty" json:"rejectionNotes,omitempty"`
	Status          VerificationStatus   `bson:"status" json:"status"`
	Photos          []VerificationPhoto  `bson:"photos" json:"photos"`
	Location        VerificationLocation `bson:"location" json:"location"`
	ID              primitive.ObjectID   `bson:"_id" json:"_id"`
	OwnerUserID     primitive.ObjectID   `bson:"owner_user_id" json:"ownerUserId"`
	CropID          primitive.ObjectID   `bson:"crop_id" json:"cropId"`
}

// PhotoSummary counts photo entries by review status.
type PhotoSummary struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

func (vr *VerificationRecord) SummarizePhotos() PhotoSummary {
	summary := PhotoSummary{Total: len(vr.Photos)}
	for _, photo := range vr.Photos {
		switch photo.Status {
		case PhotoStatusApproved:
			summary.Approved++
		case PhotoStatusRejected:
			summary.Rejected++
		default:
			summary.Pending++
		}
	}
	return summary
}

// SubmitVerificationRequest is the JSON part of the multipart submission.
// Descriptive fields are optional overrides; when empty the crop directory
// values win.
type SubmitVerificationRequest struct {
	CropID    string   `json:"cropId" validate:"required"`
	FullName  string   `json:"fullName"`
	Phone     string   `json:"phone"`
	Village   string   `json:"village"`
	Taluk     string   `json:"taluk"`
	District  string   `json:"district"`
	Quantity  string   `json:"quantity"`
	Variety   string   `json:"variety"`
	Moisture  string   `json:"moisture"`
	WillDry   string   `json:"willDry"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

type ReviewPhotosRequest struct {
	ApprovedPhotoIDs []string `json:"approvedPhotoIds"`
}

type FinalizeVerificationRequest struct {
	Decision        string `json:"decision" validate:"required"`
	RejectionReason string `json:"rejectionReason"`
	RejectionNotes  string `json:"rejectionNotes"`
	ReviewerID      string `json:"reviewerId"`
	LocationType    string `json:"locationType"`
}

type UpdateLocationTypeRequest struct {
	LocationType string `json:"locationType" validate:"required"`
}

// CurrentStatus is the canSubmit reduction over the owner's latest record.
type CurrentStatus struct {
	CanSubmit bool                `json:"canSubmit"`
	Message   string              `json:"message"`
	Latest    *VerificationRecord `json:"latest,omitempty"`
}

// AdminVerificationRecord is a search row enriched with photo counts.
type AdminVerificationRecord struct {
	VerificationRecord `bson:",inline"`
	PhotoSummary       PhotoSummary `json:"photoSummary"`
}
