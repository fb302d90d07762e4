package enum

// ReputationAction represents the category of a reputation ledger event.
//
//go:generate go tool enumer -type=ReputationAction -trimprefix=ReputationAction -transform=snake
type ReputationAction int

const (
	// ReputationActionUpvoteReceived is credited to an author whose content was upvoted.
	ReputationActionUpvoteReceived ReputationAction = iota
	// ReputationActionDownvoteReceived is debited from an author whose content was downvoted.
	ReputationActionDownvoteReceived
	// ReputationActionUpvoteGiven is credited to an actor who cast an upvote.
	ReputationActionUpvoteGiven
	// ReputationActionDownvoteGiven is debited from an actor who cast a downvote.
	ReputationActionDownvoteGiven
	// ReputationActionVoteRetracted reverses the effect of a withdrawn vote.
	ReputationActionVoteRetracted
	// ReputationActionVoteFlipped carries the combined delta of a polarity flip.
	ReputationActionVoteFlipped
	// ReputationActionBestAnswer is credited when an answer is marked best.
	ReputationActionBestAnswer
	// ReputationActionLevelUp is a zero-point marker recording a level transition.
	ReputationActionLevelUp
	// ReputationActionAdminAdjustment is a manual correction by an administrator.
	ReputationActionAdminAdjustment
)

// DailyLimitKind identifies which rolling 24-hour ceiling a delta would exceed.
//
//go:generate go tool enumer -type=DailyLimitKind -trimprefix=DailyLimitKind -transform=snake
type DailyLimitKind int

const (
	// DailyLimitKindGain caps the sum of positive deltas in the window.
	DailyLimitKindGain DailyLimitKind = iota
	// DailyLimitKindLoss caps the absolute sum of negative deltas in the window.
	DailyLimitKindLoss
	// DailyLimitKindNet caps the net change in the window.
	DailyLimitKindNet
)
