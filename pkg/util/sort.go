package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

func GetVerificationSortBson(sort string) bson.D {
	value := -1
	var key string

	switch sort {
	case "created_at_asc":
		key = "created_at"
	case "created_at_desc":
		key = "created_at"
	case "updated_at_asc":
		key = "updated_at"
	case "updated_at_desc":
		key = "updated_at"
	case "reviewed_at_asc":
		key = "reviewed_at"
	case "reviewed_at_desc":
		key = "reviewed_at"
	default:
		key = "created_at"
	}

	if strings.Contains(sort, "asc") {
		value = 1
	}
	return bson.D{{Key: key, Value: value}}
}
