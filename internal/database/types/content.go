package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types/enum"
)

var (
	ErrContentNotFound  = errors.New("content not found")
	ErrNotContentAuthor = errors.New("actor is not the content author")
	ErrNotAnAnswer      = errors.New("content is not an answer")
)

// ContentItem represents a question or answer owned by its authoring actor.
// The vote tally is only ever mutated through the vote cascade's atomic
// increment; no other component writes it.
type ContentItem struct {
	ID          uuid.UUID        `bun:",pk,type:uuid"`
	AuthorID    uuid.UUID        `bun:",notnull,type:uuid"`
	Kind        enum.ContentKind `bun:",notnull"`
	ParentID    uuid.UUID        `bun:",type:uuid,nullzero"` // Owning question for answers
	SubjectCode string           `bun:",notnull"`
	VoteTally   int64            `bun:",notnull"` // Net polarity tally, may be negative
	IsBest      bool             `bun:",notnull"` // Answers only
	CreatedAt   time.Time        `bun:",notnull"`
	UpdatedAt   time.Time        `bun:",notnull"`
}
