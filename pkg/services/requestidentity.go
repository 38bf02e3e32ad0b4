package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	requestIDChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	requestIDCodeLen  = 6
	requestIDAttempts = 10
)

type requestIdentity struct {
	repo VerificationRepository
	rng  *rand.Rand
	mu   sync.Mutex
	now  func() time.Time
}

func NewRequestIdentity(repo VerificationRepository) RequestIdentity {
	return &requestIdentity{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// Generate produces an OR-REQ-<year>-<code> identifier, retrying on
// collision up to the attempt bound. Exhausting the bound aborts creation
// rather than risking a duplicate.
func (ri *requestIdentity) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < requestIDAttempts; attempt++ {
		candidate := fmt.Sprintf("OR-REQ-%d-%s", ri.now().Year(), ri.randomCode())

		count, err := ri.repo.CountByRequestID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}

	return "", errors.Wrapf(ErrIdentityExhausted, "no unique request id after %d attempts", requestIDAttempts)
}

func (ri *requestIdentity) randomCode() string {
	ri.mu.Lock()
	defer ri.mu.Unlock()

	code := make([]byte, requestIDCodeLen)
	for i := range code {
		code[i] = requestIDChars[ri.rng.Intn(len(requestIDChars))]
	}
	return string(code)
}
