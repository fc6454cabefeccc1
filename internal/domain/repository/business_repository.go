package repository

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/errors"
)

// ErrBusinessProfileNotFound is returned when no profile has been saved yet.
var ErrBusinessProfileNotFound = errors.New("business profile not found")

// BusinessRepository persists shop profile snapshots. The collection is
// append-only; there is deliberately no update or delete.
type BusinessRepository interface {
	// Current returns the most recently appended snapshot.
	Current(ctx context.Context) (*entity.BusinessInfo, error)

	// Append persists a new snapshot, assigning its id and created_at.
	Append(ctx context.Context, info *entity.BusinessInfo) error
}
