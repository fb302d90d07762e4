package types

import "github.com/google/uuid"

// SideEffectFailure records a cascade side effect that was dropped rather
// than allowed to fail the primary operation. These are surfaced on the
// result and published to the event feed so operators can reconcile them.
type SideEffectFailure struct {
	Step    string
	ActorID uuid.UUID
	Err     error
}

// CascadeResult is the outcome of one vote cascade. The primary
// interaction write always succeeded if a result is returned; everything
// else is best-effort and reports its own failure here.
type CascadeResult struct {
	Outcome      *VoteOutcome
	Tally        int64 // Content tally after the atomic increment
	TallyUpdated bool  // False when the increment failed and needs reconciliation
	AuthorResult *DeltaResult
	VoterResult  *DeltaResult
	NewBadges    []*AwardedBadge
	Failures     []SideEffectFailure
}

// BestAnswerResult is the outcome of marking an answer best.
type BestAnswerResult struct {
	QuestionID   uuid.UUID
	AnswerID     uuid.UUID
	AuthorResult *DeltaResult
	NewBadges    []*AwardedBadge
	Failures     []SideEffectFailure
}
