package services

import (
	"context"
	"time"

	"oruagri-api-io/api/pkg/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockVerificationRepository is a mock implementation of the
// VerificationRepository interface
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Insert(ctx context.Context, record *models.VerificationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.VerificationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) FindByOwner(ctx context.Context, ownerUserID primitive.ObjectID) ([]models.VerificationRecord, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) FindLatestByOwner(ctx context.Context, ownerUserID primitive.ObjectID) (*models.VerificationRecord, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) CountByRequestID(ctx context.Context, requestID string) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVerificationRepository) UpdatePhotosIfPending(ctx context.Context, id primitive.ObjectID, photos []models.VerificationPhoto, now time.Time) (*models.VerificationRecord, error) {
	args := m.Called(ctx, id, photos, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) FinalizeIfPending(ctx context.Context, id primitive.ObjectID, update FinalizeUpdate) (*models.VerificationRecord, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) SetLocationType(ctx context.Context, id primitive.ObjectID, locationType models.LocationType, now time.Time) (*models.VerificationRecord, error) {
	args := m.Called(ctx, id, locationType, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationRecord), args.Error(1)
}

func (m *MockVerificationRepository) Search(ctx context.Context, filter SearchFilter, page, pageSize int) ([]models.VerificationRecord, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.VerificationRecord), args.Get(1).(int64), args.Error(2)
}

// MockCropDirectory is a mock implementation of the CropDirectory interface
type MockCropDirectory struct {
	mock.Mock
}

func (m *MockCropDirectory) Lookup(ctx context.Context, cropID primitive.ObjectID) (*models.CropProfile, error) {
	args := m.Called(ctx, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CropProfile), args.Error(1)
}

// MockMediaStore is a mock implementation of the MediaStore interface
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Put(ctx context.Context, file models.File, hint string) (models.Url, error) {
	args := m.Called(ctx, file, hint)
	return args.Get(0).(models.Url), args.Error(1)
}

func (m *MockMediaStore) Remove(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// MockRequestIdentity is a mock implementation of the RequestIdentity interface
type MockRequestIdentity struct {
	mock.Mock
}

func (m *MockRequestIdentity) Generate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
