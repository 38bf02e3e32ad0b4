package common

import (
	"strings"
	"time"

	"oruagri-api-io/api/pkg/util"

	"github.com/go-playground/validator/v10"
)

// Database collections
var (
	VerificationCollection = util.GetCollection(util.DB(), "Verification")
	CropCollection         = util.GetCollection(util.DB(), "Crop")

	Validate = validator.New()
)

const (
	REQUEST_TIMEOUT_SECS = 2 * 60 * time.Second

	MAX_PHOTO_FILE_SIZE = 10 << 20
)

// IsEmptyString checks if a string is empty
func IsEmptyString(s string) bool {
	return strings.Compare(s, "") == 0
}
