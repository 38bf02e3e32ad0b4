package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGetVerificationSortBson(t *testing.T) {
	cases := []struct {
		sort     string
		expected bson.D
	}{
		{"created_at_asc", bson.D{{Key: "created_at", Value: 1}}},
		{"created_at_desc", bson.D{{Key: "created_at", Value: -1}}},
		{"updated_at_asc", bson.D{{Key: "updated_at", Value: 1}}},
		{"reviewed_at_desc", bson.D{{Key: "reviewed_at", Value: -1}}},
		{"", bson.D{{Key: "created_at", Value: -1}}},
		{"garbage", bson.D{{Key: "created_at", Value: -1}}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, GetVerificationSortBson(tc.sort), tc.sort)
	}
}
