package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSummarizePhotos(t *testing.T) {
	record := VerificationRecord{
		Photos: []VerificationPhoto{
			{ID: primitive.NewObjectID(), Status: PhotoStatusApproved},
			{ID: primitive.NewObjectID(), Status: PhotoStatusApproved},
			{ID: primitive.NewObjectID(), Status: PhotoStatusRejected},
			{ID: primitive.NewObjectID(), Status: PhotoStatusPending},
		},
	}

	summary := record.SummarizePhotos()

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Approved)
	assert.Equal(t, 1, summary.Rejected)
	assert.Equal(t, 1, summary.Pending)
}

func TestSummarizePhotosEmpty(t *testing.T) {
	record := VerificationRecord{}

	summary := record.SummarizePhotos()

	assert.Equal(t, PhotoSummary{}, summary)
}

func TestIsValidRejectionReason(t *testing.T) {
	for _, reason := range RejectionReasons {
		assert.True(t, IsValidRejectionReason(reason), reason)
	}

	assert.False(t, IsValidRejectionReason(""))
	assert.False(t, IsValidRejectionReason("bad-photos"))
	assert.False(t, IsValidRejectionReason("Other"))
}

func TestIsValidLocationType(t *testing.T) {
	assert.True(t, IsValidLocationType(LocationTypeFarm))
	assert.True(t, IsValidLocationType(LocationTypeVillage))
	assert.False(t, IsValidLocationType(""))
	assert.False(t, IsValidLocationType("warehouse"))
}
