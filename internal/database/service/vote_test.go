package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/database/service"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap/zaptest"
)

func testPoints() *config.Reputation {
	return &config.Reputation{
		UpvoteReceived:   10,
		DownvoteReceived: -2,
		UpvoteGiven:      1,
		DownvoteGiven:    -1,
		BestAnswer:       15,
		MaxEventDelta:    100,
		MaxDailyGain:     200,
		MaxDailyLoss:     100,
		MaxDailyNet:      300,
		MinScoreToVote:   10,
	}
}

// recordingEmitter captures published events for assertions. Badge
// evaluations run concurrently, so appends are guarded.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.Event
}

func (r *recordingEmitter) Emit(_ context.Context, event *events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingEmitter) byKind(kind string) []*events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*events.Event
	for _, event := range r.events {
		if event.Kind == kind {
			matched = append(matched, event)
		}
	}
	return matched
}

type stubContents struct {
	items    map[uuid.UUID]*types.ContentItem
	tally    int64
	tallyErr error
}

func (s *stubContents) Get(_ context.Context, contentID uuid.UUID) (*types.ContentItem, error) {
	item, ok := s.items[contentID]
	if !ok {
		return nil, types.ErrContentNotFound
	}
	return item, nil
}

func (s *stubContents) IncrementTally(_ context.Context, _ uuid.UUID, delta int64) (int64, error) {
	if s.tallyErr != nil {
		return 0, s.tallyErr
	}
	s.tally += delta
	return s.tally, nil
}

type stubVotes struct {
	active  *types.Interaction
	created int
	deleted int
	flipped int
}

func (s *stubVotes) GetActiveVote(context.Context, uuid.UUID, uuid.UUID) (*types.Interaction, error) {
	return s.active, nil
}

func (s *stubVotes) CreateVote(context.Context, *types.Interaction) error {
	s.created++
	return nil
}

func (s *stubVotes) DeleteVote(context.Context, uuid.UUID, uuid.UUID, enum.InteractionKind) error {
	s.deleted++
	return nil
}

func (s *stubVotes) FlipVote(context.Context, uuid.UUID, uuid.UUID, enum.InteractionKind, enum.InteractionKind) error {
	s.flipped++
	return nil
}

type stubScores map[uuid.UUID]int64

func (s stubScores) Score(_ context.Context, actorID uuid.UUID) (int64, error) {
	return s[actorID], nil
}

type stubDeltas struct {
	errs    map[uuid.UUID]error
	applied map[uuid.UUID]int64
}

func (s *stubDeltas) ApplyDelta(
	_ context.Context, actorID uuid.UUID, delta int64, _ enum.ReputationAction,
	_ uuid.UUID, _ map[string]any, _ bool,
) (*types.DeltaResult, error) {
	if err := s.errs[actorID]; err != nil {
		return nil, err
	}
	if s.applied == nil {
		s.applied = make(map[uuid.UUID]int64)
	}
	s.applied[actorID] += delta
	return &types.DeltaResult{Applied: delta}, nil
}

type stubEvaluator struct{}

func (stubEvaluator) Evaluate(context.Context, uuid.UUID) ([]*types.AwardedBadge, error) {
	return nil, nil
}

type voteHarness struct {
	service  *service.VoteService
	contents *stubContents
	votes    *stubVotes
	deltas   *stubDeltas
	emitter  *recordingEmitter

	voterID   uuid.UUID
	authorID  uuid.UUID
	contentID uuid.UUID
}

// newVoteHarness wires a vote service over stubs with one question owned
// by authorID and a voter holding the given score.
func newVoteHarness(t *testing.T, voterScore int64) *voteHarness {
	t.Helper()

	h := &voteHarness{
		votes:     &stubVotes{},
		deltas:    &stubDeltas{errs: make(map[uuid.UUID]error)},
		emitter:   &recordingEmitter{},
		voterID:   uuid.New(),
		authorID:  uuid.New(),
		contentID: uuid.New(),
	}
	h.contents = &stubContents{
		items: map[uuid.UUID]*types.ContentItem{
			h.contentID: {
				ID:       h.contentID,
				AuthorID: h.authorID,
				Kind:     enum.ContentKindQuestion,
			},
		},
	}

	scores := stubScores{h.voterID: voterScore}
	h.service = service.NewVote(
		h.contents, h.votes, scores, h.deltas, stubEvaluator{},
		testPoints(), h.emitter, zaptest.NewLogger(t))
	return h
}

func TestVoteOutcomeFor(t *testing.T) {
	t.Parallel()

	up := enum.InteractionKindUpvote
	down := enum.InteractionKindDownvote

	tests := []struct {
		name            string
		existing        *enum.InteractionKind
		requested       enum.InteractionKind
		wantTransition  enum.VoteTransition
		wantTallyDelta  int64
		wantAuthorDelta int64
		wantVoterDelta  int64
		wantAuthor      enum.ReputationAction
		wantVoter       enum.ReputationAction
	}{
		{
			name:            "fresh upvote",
			existing:        nil,
			requested:       up,
			wantTransition:  enum.VoteTransitionCreated,
			wantTallyDelta:  1,
			wantAuthorDelta: 10,
			wantVoterDelta:  1,
			wantAuthor:      enum.ReputationActionUpvoteReceived,
			wantVoter:       enum.ReputationActionUpvoteGiven,
		},
		{
			name:            "fresh downvote",
			existing:        nil,
			requested:       down,
			wantTransition:  enum.VoteTransitionCreated,
			wantTallyDelta:  -1,
			wantAuthorDelta: -2,
			wantVoterDelta:  -1,
			wantAuthor:      enum.ReputationActionDownvoteReceived,
			wantVoter:       enum.ReputationActionDownvoteGiven,
		},
		{
			name:            "repeated upvote retracts",
			existing:        &up,
			requested:       up,
			wantTransition:  enum.VoteTransitionRetracted,
			wantTallyDelta:  -1,
			wantAuthorDelta: -10,
			wantVoterDelta:  -1,
			wantAuthor:      enum.ReputationActionVoteRetracted,
			wantVoter:       enum.ReputationActionVoteRetracted,
		},
		{
			name:            "repeated downvote retracts",
			existing:        &down,
			requested:       down,
			wantTransition:  enum.VoteTransitionRetracted,
			wantTallyDelta:  1,
			wantAuthorDelta: 2,
			wantVoterDelta:  1,
			wantAuthor:      enum.ReputationActionVoteRetracted,
			wantVoter:       enum.ReputationActionVoteRetracted,
		},
		{
			name:            "downvote flips to upvote",
			existing:        &down,
			requested:       up,
			wantTransition:  enum.VoteTransitionFlipped,
			wantTallyDelta:  2,
			wantAuthorDelta: 12,
			wantVoterDelta:  2,
			wantAuthor:      enum.ReputationActionVoteFlipped,
			wantVoter:       enum.ReputationActionVoteFlipped,
		},
		{
			name:            "upvote flips to downvote",
			existing:        &up,
			requested:       down,
			wantTransition:  enum.VoteTransitionFlipped,
			wantTallyDelta:  -2,
			wantAuthorDelta: -12,
			wantVoterDelta:  -2,
			wantAuthor:      enum.ReputationActionVoteFlipped,
			wantVoter:       enum.ReputationActionVoteFlipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome := service.VoteOutcomeFor(tt.existing, tt.requested, testPoints())
			assert.Equal(t, tt.wantTransition, outcome.Transition)
			assert.Equal(t, tt.requested, outcome.Polarity)
			assert.Equal(t, tt.wantTallyDelta, outcome.TallyDelta)
			assert.Equal(t, tt.wantAuthorDelta, outcome.AuthorDelta)
			assert.Equal(t, tt.wantVoterDelta, outcome.VoterDelta)
			assert.Equal(t, tt.wantAuthor, outcome.AuthorAction)
			assert.Equal(t, tt.wantVoter, outcome.VoterAction)
		})
	}
}

// A full toggle cycle must return every delta to zero, whichever polarity
// it starts with.
func TestVoteOutcomeFor_ToggleCycleIsNeutral(t *testing.T) {
	t.Parallel()

	for _, start := range []enum.InteractionKind{
		enum.InteractionKindUpvote, enum.InteractionKindDownvote,
	} {
		t.Run(start.String(), func(t *testing.T) {
			t.Parallel()

			cast := service.VoteOutcomeFor(nil, start, testPoints())
			retract := service.VoteOutcomeFor(&start, start, testPoints())

			assert.Zero(t, cast.TallyDelta+retract.TallyDelta)
			assert.Zero(t, cast.AuthorDelta+retract.AuthorDelta)
			assert.Zero(t, cast.VoterDelta+retract.VoterDelta)
		})
	}
}

// A flip must equal a retraction of the old polarity plus a fresh cast of
// the new one.
func TestVoteOutcomeFor_FlipEqualsRetractPlusCast(t *testing.T) {
	t.Parallel()

	up := enum.InteractionKindUpvote
	down := enum.InteractionKindDownvote

	flip := service.VoteOutcomeFor(&down, up, testPoints())
	retract := service.VoteOutcomeFor(&down, down, testPoints())
	cast := service.VoteOutcomeFor(nil, up, testPoints())

	assert.Equal(t, retract.TallyDelta+cast.TallyDelta, flip.TallyDelta)
	assert.Equal(t, retract.AuthorDelta+cast.AuthorDelta, flip.AuthorDelta)
	assert.Equal(t, retract.VoterDelta+cast.VoterDelta, flip.VoterDelta)
}

// Precondition failures must abort before the interaction write: nothing
// is created, no side effect runs, no event is published.
func TestCastVote_Preconditions(t *testing.T) {
	t.Parallel()

	up := enum.InteractionKindUpvote

	t.Run("unknown content", func(t *testing.T) {
		t.Parallel()

		h := newVoteHarness(t, 100)
		_, err := h.service.CastVote(context.Background(), h.voterID, uuid.New(), up)
		require.ErrorIs(t, err, types.ErrContentNotFound)
		assert.Zero(t, h.votes.created)
	})

	t.Run("self vote", func(t *testing.T) {
		t.Parallel()

		h := newVoteHarness(t, 100)
		_, err := h.service.CastVote(context.Background(), h.authorID, h.contentID, up)
		require.ErrorIs(t, err, types.ErrSelfVoteNotAllowed)
		assert.Zero(t, h.votes.created)
		assert.Empty(t, h.deltas.applied)
	})

	t.Run("score below minimum", func(t *testing.T) {
		t.Parallel()

		h := newVoteHarness(t, 9)
		_, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, up)
		require.ErrorIs(t, err, types.ErrInsufficientReputation)
		assert.Zero(t, h.votes.created)
		assert.Empty(t, h.deltas.applied)
		assert.Empty(t, h.emitter.events)
	})

	t.Run("score at minimum passes", func(t *testing.T) {
		t.Parallel()

		h := newVoteHarness(t, 10)
		result, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, up)
		require.NoError(t, err)
		assert.Equal(t, enum.VoteTransitionCreated, result.Outcome.Transition)
		assert.Equal(t, 1, h.votes.created)
	})

	t.Run("non-vote kind rejected", func(t *testing.T) {
		t.Parallel()

		h := newVoteHarness(t, 100)
		_, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, enum.InteractionKindBookmark)
		require.Error(t, err)
		assert.Zero(t, h.votes.created)
	})
}

func TestCastVote_CascadeAppliesEffects(t *testing.T) {
	t.Parallel()

	h := newVoteHarness(t, 50)
	result, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, enum.InteractionKindUpvote)
	require.NoError(t, err)

	assert.Equal(t, enum.VoteTransitionCreated, result.Outcome.Transition)
	assert.True(t, result.TallyUpdated)
	assert.Equal(t, int64(1), result.Tally)
	assert.Equal(t, int64(10), h.deltas.applied[h.authorID])
	assert.Equal(t, int64(1), h.deltas.applied[h.voterID])
	assert.Empty(t, result.Failures)
}

// A ledger inconsistency during the cascade is the one side-effect fault
// that escalates: it lands on the reconciliation feed, not among the
// quietly dropped effects.
func TestCastVote_LedgerInconsistencyEscalates(t *testing.T) {
	t.Parallel()

	h := newVoteHarness(t, 50)
	h.deltas.errs[h.authorID] = fmt.Errorf("author ledger: %w", types.ErrLedgerInconsistency)

	result, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, enum.InteractionKindUpvote)
	require.NoError(t, err)

	assert.Nil(t, result.AuthorResult)
	assert.NotNil(t, result.VoterResult)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "author_reputation", result.Failures[0].Step)

	escalated := h.emitter.byKind(events.KindReconciliationNeeded)
	require.Len(t, escalated, 1)
	assert.Equal(t, h.authorID, escalated[0].ActorID)
	assert.Empty(t, h.emitter.byKind(events.KindSideEffectDropped))
}

// A daily-limit rejection is an ordinary dropped effect, never an
// escalation.
func TestCastVote_DailyLimitDropsQuietly(t *testing.T) {
	t.Parallel()

	h := newVoteHarness(t, 50)
	h.deltas.errs[h.voterID] = &types.DailyLimitError{
		Kind: enum.DailyLimitKindGain, Current: 200, Requested: 1, Ceiling: 200,
	}

	result, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, enum.InteractionKindUpvote)
	require.NoError(t, err)

	assert.NotNil(t, result.AuthorResult)
	assert.Nil(t, result.VoterResult)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "voter_reputation", result.Failures[0].Step)

	assert.Len(t, h.emitter.byKind(events.KindSideEffectDropped), 1)
	assert.Empty(t, h.emitter.byKind(events.KindReconciliationNeeded))
}

func TestCastVote_TallyFailureFlagsReconciliation(t *testing.T) {
	t.Parallel()

	h := newVoteHarness(t, 50)
	h.contents.tallyErr = errors.New("tally unavailable")

	result, err := h.service.CastVote(context.Background(), h.voterID, h.contentID, enum.InteractionKindUpvote)
	require.NoError(t, err)

	assert.False(t, result.TallyUpdated)
	require.NotEmpty(t, result.Failures)
	assert.Equal(t, "tally_update", result.Failures[0].Step)
	assert.Len(t, h.emitter.byKind(events.KindReconciliationNeeded), 1)
}

func TestRemoveVote_NoActiveVoteIsNoOp(t *testing.T) {
	t.Parallel()

	h := newVoteHarness(t, 50)
	result, err := h.service.RemoveVote(context.Background(), h.voterID, h.contentID)
	require.NoError(t, err)

	assert.Equal(t, enum.VoteTransitionNone, result.Outcome.Transition)
	assert.Zero(t, h.votes.deleted)
	assert.Empty(t, h.deltas.applied)
	assert.Empty(t, h.emitter.events)
}

func TestRemoveVote_RetractsActiveVote(t *testing.T) {
	t.Parallel()

	h := newVoteHarness(t, 50)
	h.votes.active = &types.Interaction{
		ActorID:   h.voterID,
		ContentID: h.contentID,
		Kind:      enum.InteractionKindUpvote,
	}

	result, err := h.service.RemoveVote(context.Background(), h.voterID, h.contentID)
	require.NoError(t, err)

	assert.Equal(t, enum.VoteTransitionRetracted, result.Outcome.Transition)
	assert.Equal(t, 1, h.votes.deleted)
	assert.Equal(t, int64(-1), result.Tally)
	assert.Equal(t, int64(-10), h.deltas.applied[h.authorID])
	assert.Equal(t, int64(-1), h.deltas.applied[h.voterID])
}
