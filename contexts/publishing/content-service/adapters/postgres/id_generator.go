package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates opaque identifiers for posts and comments.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
