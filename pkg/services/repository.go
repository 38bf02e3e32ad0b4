package services

import (
	"context"
	"regexp"
	"time"

	"oruagri-api-io/api/pkg/models"
	"oruagri-api-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchFilter is the persistence-level form of an admin search.
type SearchFilter struct {
	Status      models.VerificationStatus
	OwnerUserID *primitive.ObjectID
	CropID      *primitive.ObjectID
	Phone       string
	FullName    string
	CropName    string
	Village     string
	Taluk       string
	District    string
	FromDate    *time.Time
	ToDate      *time.Time
	Sort        string
}

// FinalizeUpdate carries the terminal-decision fields applied by
// FinalizeIfPending.
type FinalizeUpdate struct {
	ReviewedAt      time.Time
	Status          models.VerificationStatus
	RejectionReason string
	RejectionNotes  string
	ReviewedBy      string
	LocationType    models.LocationType
}

// VerificationRepository is the persistence capability for verification
// records. Lookup methods return (nil, nil) when nothing matches; the
// conditional mutators return (nil, nil) when the pending guard fails.
type VerificationRepository interface {
	Insert(ctx context.Context, record *models.VerificationRecord) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.VerificationRecord, error)
	FindByOwner(ctx context.Context, ownerUserID primitive.ObjectID) ([]models.VerificationRecord, error)
	FindLatestByOwner(ctx context.Context, ownerUserID primitive.ObjectID) (*models.VerificationRecord, error)
	CountByRequestID(ctx context.Context, requestID string) (int64, error)
	UpdatePhotosIfPending(ctx context.Context, id primitive.ObjectID, photos []models.VerificationPhoto, now time.Time) (*models.VerificationRecord, error)
	FinalizeIfPending(ctx context.Context, id primitive.ObjectID, update FinalizeUpdate) (*models.VerificationRecord, error)
	SetLocationType(ctx context.Context, id primitive.ObjectID, locationType models.LocationType, now time.Time) (*models.VerificationRecord, error)
	Search(ctx context.Context, filter SearchFilter, page, pageSize int) ([]models.VerificationRecord, int64, error)
}

type verificationRepository struct {
	collection *mongo.Collection
}

func NewVerificationRepository(collection *mongo.Collection) VerificationRepository {
	return &verificationRepository{collection: collection}
}

func (vr *verificationRepository) Insert(ctx context.Context, record *models.VerificationRecord) error {
	_, err := vr.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		// the unique request_id index caught a concurrent insert
		return errors.Wrap(ErrConflict, "request id already exists")
	}
	if err != nil {
		return errors.Wrap(err, "inserting verification record")
	}
	return nil
}

func (vr *verificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.VerificationRecord, error) {
	var record models.VerificationRecord
	err := vr.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching verification record")
	}
	return &record, nil
}

func (vr *verificationRepository) FindByOwner(ctx context.Context, ownerUserID primitive.ObjectID) ([]models.VerificationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := vr.collection.Find(ctx, bson.M{"owner_user_id": ownerUserID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "listing verification records")
	}
	defer cursor.Close(ctx)

	var records []models.VerificationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "decoding verification records")
	}
	return records, nil
}

func (vr *verificationRepository) FindLatestByOwner(ctx context.Context, ownerUserID primitive.ObjectID) (*models.VerificationRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var record models.VerificationRecord
	err := vr.collection.FindOne(ctx, bson.M{"owner_user_id": ownerUserID}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching latest verification record")
	}
	return &record, nil
}

func (vr *verificationRepository) CountByRequestID(ctx context.Context, requestID string) (int64, error) {
	count, err := vr.collection.CountDocuments(ctx, bson.M{"request_id": requestID})
	if err != nil {
		return 0, errors.Wrap(err, "counting request ids")
	}
	return count, nil
}

// UpdatePhotosIfPending overwrites the photo array only while the record is
// still pending. Returns (nil, nil) when no pending record matched.
func (vr *verificationRepository) UpdatePhotosIfPending(ctx context.Context, id primitive.ObjectID, photos []models.VerificationPhoto, now time.Time) (*models.VerificationRecord, error) {
	filter := bson.M{"_id": id, "status": models.VerificationStatusPending}
	update := bson.M{"$set": bson.M{"photos": photos, "updated_at": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.VerificationRecord
	err := vr.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "updating photo statuses")
	}
	return &record, nil
}

// FinalizeIfPending applies the one-way terminal transition. The pending
// filter makes concurrent finalize calls race safely: exactly one wins.
func (vr *verificationRepository) FinalizeIfPending(ctx context.Context, id primitive.ObjectID, update FinalizeUpdate) (*models.VerificationRecord, error) {
	set := bson.M{
		"status":      update.Status,
		"reviewed_at": update.ReviewedAt,
		"updated_at":  update.ReviewedAt,
	}
	if update.ReviewedBy != "" {
		set["reviewed_by"] = update.ReviewedBy
	}
	if update.Status == models.VerificationStatusRejected {
		set["rejection_reason"] = update.RejectionReason
		if update.RejectionNotes != "" {
			set["rejection_notes"] = update.RejectionNotes
		}
	}
	if update.Status == models.VerificationStatusApproved && update.LocationType != "" {
		set["location.location_type"] = update.LocationType
	}

	filter := bson.M{"_id": id, "status": models.VerificationStatusPending}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.VerificationRecord
	err := vr.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "finalizing verification record")
	}
	return &record, nil
}

// SetLocationType has no status guard: it is the repair path for
// misclassified records.
func (vr *verificationRepository) SetLocationType(ctx context.Context, id primitive.ObjectID, locationType models.LocationType, now time.Time) (*models.VerificationRecord, error) {
	update := bson.M{"$set": bson.M{"location.location_type": locationType, "updated_at": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.VerificationRecord
	err := vr.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "updating location type")
	}
	return &record, nil
}

func (vr *verificationRepository) Search(ctx context.Context, filter SearchFilter, page, pageSize int) ([]models.VerificationRecord, int64, error) {
	query := buildSearchFilter(filter)

	count, err := vr.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "counting search results")
	}

	opts := options.Find().
		SetSort(util.GetVerificationSortBson(filter.Sort)).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := vr.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "searching verification records")
	}
	defer cursor.Close(ctx)

	var records []models.VerificationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, errors.Wrap(err, "decoding search results")
	}
	return records, count, nil
}

// partial-match fields use escaped case-insensitive regexes so filter text is
// never interpreted as a pattern
func buildSearchFilter(f SearchFilter) bson.M {
	query := bson.M{}

	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.OwnerUserID != nil {
		query["owner_user_id"] = *f.OwnerUserID
	}
	if f.CropID != nil {
		query["crop_id"] = *f.CropID
	}

	partials := map[string]string{
		"phone":     f.Phone,
		"full_name": f.FullName,
		"crop_name": f.CropName,
		"village":   f.Village,
		"taluk":     f.Taluk,
		"district":  f.District,
	}
	for field, term := range partials {
		if term != "" {
			query[field] = primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		}
	}

	// created_at range is inclusive on both UTC day boundaries
	created := bson.M{}
	if f.FromDate != nil {
		created["$gte"] = startOfDayUTC(*f.FromDate)
	}
	if f.ToDate != nil {
		created["$lt"] = startOfDayUTC(*f.ToDate).AddDate(0, 0, 1)
	}
	if len(created) > 0 {
		query["created_at"] = created
	}

	return query
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
