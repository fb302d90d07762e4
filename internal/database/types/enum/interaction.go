package enum

// InteractionKind represents how an actor interacted with a content item.
//
//go:generate go tool enumer -type=InteractionKind -trimprefix=InteractionKind -transform=snake
type InteractionKind int

const (
	// InteractionKindUpvote is a positive polarity vote.
	InteractionKindUpvote InteractionKind = iota
	// InteractionKindDownvote is a negative polarity vote.
	InteractionKindDownvote
	// InteractionKindBookmark saves content to the actor's bookmark list.
	InteractionKindBookmark
	// InteractionKindReport flags content for the moderation collaborator.
	InteractionKindReport
)

// IsPolarity returns true if the kind is a directional vote.
func (i InteractionKind) IsPolarity() bool {
	return i == InteractionKindUpvote || i == InteractionKindDownvote
}

// Opposite returns the flipped polarity for vote kinds.
// Non-polarity kinds are returned unchanged.
func (i InteractionKind) Opposite() InteractionKind {
	switch i {
	case InteractionKindUpvote:
		return InteractionKindDownvote
	case InteractionKindDownvote:
		return InteractionKindUpvote
	default:
		return i
	}
}

// TallyStep returns the tally contribution of a single vote of this kind.
func (i InteractionKind) TallyStep() int {
	switch i {
	case InteractionKindUpvote:
		return 1
	case InteractionKindDownvote:
		return -1
	default:
		return 0
	}
}

// VoteTransition represents the state change produced by a single vote call.
//
//go:generate go tool enumer -type=VoteTransition -trimprefix=VoteTransition -transform=snake
type VoteTransition int

const (
	// VoteTransitionNone means no active vote changed.
	VoteTransitionNone VoteTransition = iota
	// VoteTransitionCreated means a new vote was recorded for the pair.
	VoteTransitionCreated
	// VoteTransitionRetracted means an existing vote of the same polarity was removed.
	VoteTransitionRetracted
	// VoteTransitionFlipped means an existing vote changed polarity in place.
	VoteTransitionFlipped
)
