package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrActorNotFound = errors.New("actor not found")

// Actor represents a community participant tracked by the reputation ledger.
// The level is never stored; it is always derived from Score through the
// level calculator so the two can never disagree.
type Actor struct {
	ID        uuid.UUID `bun:",pk,type:uuid"` // Authenticated identity supplied by the caller
	Score     int64     `bun:",notnull"`      // Current reputation score, never negative
	CreatedAt time.Time `bun:",notnull"`      // When the actor was first touched
	UpdatedAt time.Time `bun:",notnull"`      // When the score last changed
}
