package services

import (
	"context"

	"oruagri-api-io/api/pkg/models"
	"oruagri-api-io/api/pkg/util"

	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/pkg/errors"
)

type cloudinaryMediaStore struct{}

func NewMediaStore() MediaStore {
	return &cloudinaryMediaStore{}
}

func (ms *cloudinaryMediaStore) Put(_ context.Context, file models.File, hint string) (models.Url, error) {
	uploadRes, err := util.FileUpload(file, hint)
	if err != nil {
		return models.Url{}, errors.Wrapf(ErrUploadFailed, "cloudinary upload: %v", err)
	}
	return models.Url{Url: uploadRes.SecureURL, PublicId: uploadRes.PublicID}, nil
}

func (ms *cloudinaryMediaStore) Remove(_ context.Context, publicID string) error {
	_, err := util.ImageDeletionHelper(uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errors.Wrapf(ErrUpstream, "cloudinary destroy: %v", err)
	}
	return nil
}
