package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types/enum"
)

var (
	ErrSelfVoteNotAllowed       = errors.New("actors cannot vote on their own content")
	ErrInsufficientReputation   = errors.New("reputation below the minimum required to vote")
	ErrInteractionAlreadyExists = errors.New("interaction already exists for this pair")
	ErrInvalidReportReason      = errors.New("report reason is not in the allowed set")
	ErrReportLimitExceeded      = errors.New("daily report limit exceeded")

	// ErrVoteConflict signals that a concurrent writer changed the pair's
	// interaction between the read and the conditional write. Callers retry
	// from a fresh read.
	ErrVoteConflict = errors.New("interaction modified concurrently")
)

// Interaction represents one actor's relationship with one content item.
// At most one active polarity interaction may exist per (actor, content)
// pair; the constraint is enforced by a partial unique index, not by
// application-level reads.
type Interaction struct {
	ID            uuid.UUID            `bun:",pk,type:uuid"`
	ActorID       uuid.UUID            `bun:",notnull,type:uuid"`
	ContentID     uuid.UUID            `bun:",notnull,type:uuid"`
	ContentKind   enum.ContentKind     `bun:",notnull"`
	Kind          enum.InteractionKind `bun:",notnull"`
	ReportReason  *enum.ReportReason   `bun:",nullzero"` // Reports only
	ReportDetails string               `bun:",nullzero"` // Reports only
	CreatedAt     time.Time            `bun:",notnull"`
	UpdatedAt     time.Time            `bun:",notnull"`
}

// VoteOutcome describes the state transition and effect deltas produced by
// a single vote call, before any of them are applied.
type VoteOutcome struct {
	Transition   enum.VoteTransition
	Polarity     enum.InteractionKind  // Final polarity; the removed polarity for retractions
	TallyDelta   int64                 // Signed change to apply to the content tally
	AuthorDelta  int64                 // Signed reputation change for the content author
	VoterDelta   int64                 // Signed reputation change for the voting actor
	AuthorAction enum.ReputationAction // Ledger category for the author-facing event
	VoterAction  enum.ReputationAction // Ledger category for the voter-facing event
}
