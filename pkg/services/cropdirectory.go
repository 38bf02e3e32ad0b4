package services

import (
	"context"

	"oruagri-api-io/api/pkg/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type cropDirectory struct {
	collection *mongo.Collection
}

func NewCropDirectory(collection *mongo.Collection) CropDirectory {
	return &cropDirectory{collection: collection}
}

func (cd *cropDirectory) Lookup(ctx context.Context, cropID primitive.ObjectID) (*models.CropProfile, error) {
	var crop models.CropProfile
	err := cd.collection.FindOne(ctx, bson.M{"_id": cropID}).Decode(&crop)
	if err == mongo.ErrNoDocuments {
		return nil, errors.Wrap(ErrNotFound, "crop not found")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrUpstream, "crop lookup failed: %v", err)
	}
	return &crop, nil
}
