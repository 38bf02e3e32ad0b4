package services

import (
	"context"
	"encoding/json"
	"time"

	"oruagri-api-io/api/pkg/models"
	"oruagri-api-io/api/pkg/util"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	statusCachePrefix = "verification:status:"
	statusCacheTTL    = 5 * time.Minute

	defaultSearchPageSize = 20
	maxSearchPageSize     = 100
)

type queryService struct {
	repo  VerificationRepository
	cache *redis.Client
}

func NewQueryService(repo VerificationRepository, cache *redis.Client) QueryService {
	return &queryService{
		repo:  repo,
		cache: cache,
	}
}

func (qs *queryService) GetByID(ctx context.Context, recordID primitive.ObjectID) (*models.VerificationRecord, error) {
	record, err := qs.repo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrap(ErrNotFound, "verification request not found")
	}
	return record, nil
}

func (qs *queryService) ListByOwner(ctx context.Context, ownerUserID primitive.ObjectID) ([]models.VerificationRecord, error) {
	return qs.repo.FindByOwner(ctx, ownerUserID)
}

// GetCurrentStatus reduces the owner's latest record to a canSubmit answer.
// The reduction is cached; submit/finalize invalidate it, and the submit-time
// duplicate check always reads Mongo directly.
func (qs *queryService) GetCurrentStatus(ctx context.Context, ownerUserID primitive.ObjectID) (*models.CurrentStatus, error) {
	key := statusCachePrefix + ownerUserID.Hex()

	if qs.cache != nil {
		if raw, err := qs.cache.Get(ctx, key).Result(); err == nil {
			var status models.CurrentStatus
			if err := json.Unmarshal([]byte(raw), &status); err == nil {
				return &status, nil
			}
		}
	}

	latest, err := qs.repo.FindLatestByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	status := reduceCurrentStatus(latest)

	if qs.cache != nil {
		if data, err := json.Marshal(status); err == nil {
			if err := qs.cache.Set(ctx, key, data, statusCacheTTL).Err(); err != nil {
				util.LogError("failed to cache current status", err)
			}
		}
	}

	return status, nil
}

func (qs *queryService) InvalidateStatusCache(ctx context.Context, ownerUserID primitive.ObjectID) error {
	if qs.cache == nil {
		return nil
	}
	return qs.cache.Del(ctx, statusCachePrefix+ownerUserID.Hex()).Err()
}

func reduceCurrentStatus(latest *models.VerificationRecord) *models.CurrentStatus {
	if latest == nil {
		return &models.CurrentStatus{
			CanSubmit: true,
			Message:   "no verification request on file",
		}
	}

	switch latest.Status {
	case models.VerificationStatusPending:
		return &models.CurrentStatus{
			CanSubmit: false,
			Message:   "a verification request is already under review",
			Latest:    latest,
		}
	case models.VerificationStatusApproved:
		return &models.CurrentStatus{
			CanSubmit: false,
			Message:   "crop is already verified",
			Latest:    latest,
		}
	default:
		return &models.CurrentStatus{
			CanSubmit: true,
			Message:   "previous request was rejected, a new request may be submitted",
			Latest:    latest,
		}
	}
}

func (qs *queryService) AdminSearch(ctx context.Context, req AdminSearchRequest) ([]models.AdminVerificationRecord, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	if pageSize > maxSearchPageSize {
		pageSize = maxSearchPageSize
	}

	filter := SearchFilter{
		Phone:    req.Phone,
		FullName: req.FullName,
		CropName: req.CropName,
		Village:  req.Village,
		Taluk:    req.Taluk,
		District: req.District,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Sort:     req.Sort,
	}

	if req.Status != "" {
		status := models.VerificationStatus(req.Status)
		if status != models.VerificationStatusPending && status != models.VerificationStatusApproved && status != models.VerificationStatusRejected {
			return nil, 0, errors.Wrap(ErrInvalidInput, "invalid status filter")
		}
		filter.Status = status
	}
	if req.OwnerUserID != "" {
		ownerID, err := primitive.ObjectIDFromHex(req.OwnerUserID)
		if err != nil {
			return nil, 0, errors.Wrap(ErrInvalidInput, "invalid ownerUserId filter")
		}
		filter.OwnerUserID = &ownerID
	}
	if req.CropID != "" {
		cropID, err := primitive.ObjectIDFromHex(req.CropID)
		if err != nil {
			return nil, 0, errors.Wrap(ErrInvalidInput, "invalid cropId filter")
		}
		filter.CropID = &cropID
	}

	records, count, err := qs.repo.Search(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]models.AdminVerificationRecord, len(records))
	for i, record := range records {
		results[i] = models.AdminVerificationRecord{
			VerificationRecord: record,
			PhotoSummary:       record.SummarizePhotos(),
		}
	}

	return results, count, nil
}
