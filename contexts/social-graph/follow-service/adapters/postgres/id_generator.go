package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates opaque identifiers for follow edges.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
