package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CropProfile is the crop-directory record: the system of record for the
// crop, its farm and its owner, keyed by crop id.
type CropProfile struct {
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	CropName  string             `bson:"crop_name" json:"cropName"`
	FullName  string             `bson:"full_name" json:"fullName"`
	Phone     string             `bson:"phone" json:"phone"`
	Village   string             `bson:"village" json:"village"`
	Taluk     string             `bson:"taluk" json:"taluk"`
	District  string             `bson:"district" json:"district"`
	Quantity  string             `bson:"quantity" json:"quantity"`
	Variety   string             `bson:"variety" json:"variety"`
	Moisture  string             `bson:"moisture" json:"moisture"`
	WillDry   string             `bson:"will_dry" json:"willDry"`
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	FarmID    primitive.ObjectID `bson:"farm_id,omitempty" json:"farmId,omitempty"`
}
