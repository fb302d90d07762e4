package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/studyhive/community-core/internal/database/dbretry"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap"
)

// voteConflictAttempts bounds the read-decide-write retry loop when a
// concurrent vote call races on the same (actor, content) pair.
const voteConflictAttempts = 3

// The vote service depends on narrow views of the storage models and its
// sibling services, so the state machine and the cascade can be exercised
// without a database.
type (
	contentStore interface {
		Get(ctx context.Context, contentID uuid.UUID) (*types.ContentItem, error)
		IncrementTally(ctx context.Context, contentID uuid.UUID, delta int64) (int64, error)
	}

	voteStore interface {
		GetActiveVote(ctx context.Context, actorID, contentID uuid.UUID) (*types.Interaction, error)
		CreateVote(ctx context.Context, interaction *types.Interaction) error
		DeleteVote(ctx context.Context, actorID, contentID uuid.UUID, polarity enum.InteractionKind) error
		FlipVote(ctx context.Context, actorID, contentID uuid.UUID, from, to enum.InteractionKind) error
	}

	scoreReader interface {
		Score(ctx context.Context, actorID uuid.UUID) (int64, error)
	}

	deltaApplier interface {
		ApplyDelta(
			ctx context.Context,
			actorID uuid.UUID,
			delta int64,
			action enum.ReputationAction,
			contentID uuid.UUID,
			details map[string]any,
			skipLimits bool,
		) (*types.DeltaResult, error)
	}

	badgeEvaluator interface {
		Evaluate(ctx context.Context, actorID uuid.UUID) ([]*types.AwardedBadge, error)
	}
)

// VoteService implements the vote state machine and the cascade that
// follows every transition. The interaction write is the primary effect;
// tally, ledger, and badge updates are best-effort side effects that
// report their own failures on the result.
type VoteService struct {
	contents     contentStore
	interactions voteStore
	actors       scoreReader
	reputation   deltaApplier
	badges       badgeEvaluator
	limits       *config.Reputation
	emitter      events.Emitter
	logger       *zap.Logger
}

// NewVote creates a vote service.
func NewVote(
	contents contentStore,
	interactions voteStore,
	actors scoreReader,
	reputation deltaApplier,
	badges badgeEvaluator,
	limits *config.Reputation,
	emitter events.Emitter,
	logger *zap.Logger,
) *VoteService {
	return &VoteService{
		contents:     contents,
		interactions: interactions,
		actors:       actors,
		reputation:   reputation,
		badges:       badges,
		limits:       limits,
		emitter:      emitter,
		logger:       logger.Named("vote_service"),
	}
}

// VoteOutcomeFor computes the transition and effect deltas for a vote call
// given the pair's current polarity, without touching storage. Casting the
// active polarity again retracts it; casting the opposite flips in place.
func VoteOutcomeFor(existing *enum.InteractionKind, requested enum.InteractionKind, pts *config.Reputation) *types.VoteOutcome {
	received := func(k enum.InteractionKind) int64 {
		if k == enum.InteractionKindUpvote {
			return pts.UpvoteReceived
		}
		return pts.DownvoteReceived
	}
	given := func(k enum.InteractionKind) int64 {
		if k == enum.InteractionKindUpvote {
			return pts.UpvoteGiven
		}
		return pts.DownvoteGiven
	}
	createdAction := func(k enum.InteractionKind, author bool) enum.ReputationAction {
		switch {
		case k == enum.InteractionKindUpvote && author:
			return enum.ReputationActionUpvoteReceived
		case k == enum.InteractionKindUpvote:
			return enum.ReputationActionUpvoteGiven
		case author:
			return enum.ReputationActionDownvoteReceived
		default:
			return enum.ReputationActionDownvoteGiven
		}
	}

	switch {
	case existing == nil:
		return &types.VoteOutcome{
			Transition:   enum.VoteTransitionCreated,
			Polarity:     requested,
			TallyDelta:   int64(requested.TallyStep()),
			AuthorDelta:  received(requested),
			VoterDelta:   given(requested),
			AuthorAction: createdAction(requested, true),
			VoterAction:  createdAction(requested, false),
		}

	case *existing == requested:
		return &types.VoteOutcome{
			Transition:   enum.VoteTransitionRetracted,
			Polarity:     requested,
			TallyDelta:   -int64(requested.TallyStep()),
			AuthorDelta:  -received(requested),
			VoterDelta:   -given(requested),
			AuthorAction: enum.ReputationActionVoteRetracted,
			VoterAction:  enum.ReputationActionVoteRetracted,
		}

	default:
		// A flip is a retraction and a cast combined into one transition,
		// so each side gets a single event carrying the combined delta.
		return &types.VoteOutcome{
			Transition:   enum.VoteTransitionFlipped,
			Polarity:     requested,
			TallyDelta:   int64(requested.TallyStep()) - int64(existing.TallyStep()),
			AuthorDelta:  received(requested) - received(*existing),
			VoterDelta:   given(requested) - given(*existing),
			AuthorAction: enum.ReputationActionVoteFlipped,
			VoterAction:  enum.ReputationActionVoteFlipped,
		}
	}
}

// CastVote applies one vote call from actorID on contentID and runs the
// cascade. The same call is the toggle: casting the active polarity again
// retracts it, casting the opposite flips it.
func (s *VoteService) CastVote(
	ctx context.Context, actorID, contentID uuid.UUID, kind enum.InteractionKind,
) (*types.CascadeResult, error) {
	if !kind.IsPolarity() {
		return nil, fmt.Errorf("%s is not a vote kind", kind)
	}

	content, err := s.contents.Get(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if content.AuthorID == actorID {
		return nil, types.ErrSelfVoteNotAllowed
	}

	score, err := s.actors.Score(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if score < s.limits.MinScoreToVote {
		return nil, fmt.Errorf("%w: score %d, required %d",
			types.ErrInsufficientReputation, score, s.limits.MinScoreToVote)
	}

	outcome, err := s.transition(ctx, content, actorID, &kind)
	if err != nil {
		return nil, err
	}

	return s.cascade(ctx, content, actorID, outcome), nil
}

// RemoveVote retracts the actor's active vote on contentID. Removing when
// no vote is active is a no-op, not an error.
func (s *VoteService) RemoveVote(ctx context.Context, actorID, contentID uuid.UUID) (*types.CascadeResult, error) {
	content, err := s.contents.Get(ctx, contentID)
	if err != nil {
		return nil, err
	}

	outcome, err := s.transition(ctx, content, actorID, nil)
	if err != nil {
		return nil, err
	}

	if outcome.Transition == enum.VoteTransitionNone {
		return &types.CascadeResult{Outcome: outcome}, nil
	}

	return s.cascade(ctx, content, actorID, outcome), nil
}

// transition runs the read-decide-write loop for one vote call. requested
// is nil for removal. Every write is conditional on the state observed by
// the read, so a concurrent writer surfaces as ErrVoteConflict and the
// loop restarts from a fresh read.
func (s *VoteService) transition(
	ctx context.Context, content *types.ContentItem, actorID uuid.UUID, requested *enum.InteractionKind,
) (*types.VoteOutcome, error) {
	for attempt := range voteConflictAttempts {
		existing, err := s.interactions.GetActiveVote(ctx, actorID, content.ID)
		if err != nil {
			return nil, err
		}

		var existingKind *enum.InteractionKind
		if existing != nil {
			existingKind = &existing.Kind
		}

		var outcome *types.VoteOutcome
		if requested == nil {
			if existing == nil {
				return &types.VoteOutcome{Transition: enum.VoteTransitionNone}, nil
			}
			outcome = VoteOutcomeFor(existingKind, existing.Kind, s.limits)
		} else {
			outcome = VoteOutcomeFor(existingKind, *requested, s.limits)
		}

		switch outcome.Transition {
		case enum.VoteTransitionCreated:
			err = s.interactions.CreateVote(ctx, &types.Interaction{
				ActorID:     actorID,
				ContentID:   content.ID,
				ContentKind: content.Kind,
				Kind:        outcome.Polarity,
			})
		case enum.VoteTransitionRetracted:
			err = s.interactions.DeleteVote(ctx, actorID, content.ID, outcome.Polarity)
		case enum.VoteTransitionFlipped:
			err = s.interactions.FlipVote(ctx, actorID, content.ID, outcome.Polarity.Opposite(), outcome.Polarity)
		case enum.VoteTransitionNone:
			return outcome, nil
		}

		if err == nil {
			return outcome, nil
		}
		if !errors.Is(err, types.ErrVoteConflict) {
			return nil, err
		}

		s.logger.Debug("Vote conflict, retrying from fresh read",
			zap.String("actorID", actorID.String()),
			zap.String("contentID", content.ID.String()),
			zap.Int("attempt", attempt+1))
	}

	return nil, types.ErrVoteConflict
}

// cascade applies the side effects of a committed vote transition. None of
// them can fail the call at this point; failures are recorded on the
// result and published so operators can reconcile.
func (s *VoteService) cascade(
	ctx context.Context, content *types.ContentItem, voterID uuid.UUID, outcome *types.VoteOutcome,
) *types.CascadeResult {
	result := &types.CascadeResult{Outcome: outcome}

	tally, err := dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		return s.contents.IncrementTally(ctx, content.ID, outcome.TallyDelta)
	})
	if err != nil {
		result.Failures = append(result.Failures, types.SideEffectFailure{
			Step: "tally_update", ActorID: content.AuthorID, Err: err,
		})
		s.emitter.Emit(ctx, &events.Event{
			Kind:      events.KindReconciliationNeeded,
			ActorID:   content.AuthorID,
			ContentID: content.ID,
			Detail:    "vote tally increment failed",
			Payload:   map[string]any{"delta": outcome.TallyDelta},
		})
		s.logger.Error("Vote tally update failed",
			zap.Error(err),
			zap.String("contentID", content.ID.String()))
	} else {
		result.Tally = tally
		result.TallyUpdated = true
	}

	result.AuthorResult = s.sideDelta(ctx, result, "author_reputation",
		content.AuthorID, outcome.AuthorDelta, outcome.AuthorAction, content.ID)
	result.VoterResult = s.sideDelta(ctx, result, "voter_reputation",
		voterID, outcome.VoterDelta, outcome.VoterAction, content.ID)

	// Reputation badges can unlock for either side, so both actors are
	// re-evaluated. The evaluations are independent and run in parallel.
	var mu sync.Mutex
	p := pool.New().WithContext(ctx)
	for _, id := range []uuid.UUID{content.AuthorID, voterID} {
		p.Go(func(ctx context.Context) error {
			badges, err := s.badges.Evaluate(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, types.SideEffectFailure{
					Step: "badge_evaluation", ActorID: id, Err: err,
				})
				return nil
			}
			result.NewBadges = append(result.NewBadges, badges...)
			return nil
		})
	}
	_ = p.Wait()

	return result
}

// sideDelta applies one best-effort reputation change during the cascade.
// Daily-limit rejections and transient failures are dropped and recorded
// rather than propagated. A ledger inconsistency is the exception: it
// breaks the audit-sum invariant, so it escalates to the reconciliation
// feed instead of being filed as an ordinary dropped effect.
func (s *VoteService) sideDelta(
	ctx context.Context,
	result *types.CascadeResult,
	step string,
	actorID uuid.UUID,
	delta int64,
	action enum.ReputationAction,
	contentID uuid.UUID,
) *types.DeltaResult {
	deltaResult, err := s.reputation.ApplyDelta(ctx, actorID, delta, action, contentID, nil, false)
	if err == nil {
		return deltaResult
	}

	result.Failures = append(result.Failures, types.SideEffectFailure{
		Step: step, ActorID: actorID, Err: err,
	})

	if errors.Is(err, types.ErrLedgerInconsistency) {
		s.emitter.Emit(ctx, &events.Event{
			Kind:      events.KindReconciliationNeeded,
			ActorID:   actorID,
			ContentID: contentID,
			Detail:    step,
			Payload:   map[string]any{"delta": delta, "action": action.String(), "error": err.Error()},
		})
		s.logger.Error("Ledger inconsistency during cascade",
			zap.Error(err),
			zap.String("actorID", actorID.String()),
			zap.String("step", step))
		return nil
	}

	s.emitter.Emit(ctx, &events.Event{
		Kind:      events.KindSideEffectDropped,
		ActorID:   actorID,
		ContentID: contentID,
		Detail:    step,
		Payload:   map[string]any{"delta": delta, "action": action.String(), "error": err.Error()},
	})

	var limitErr *types.DailyLimitError
	if errors.As(err, &limitErr) {
		s.logger.Info("Cascade delta dropped at daily limit",
			zap.String("actorID", actorID.String()),
			zap.String("limit", limitErr.Kind.String()),
			zap.Int64("delta", delta))
	} else {
		s.logger.Warn("Cascade delta failed",
			zap.Error(err),
			zap.String("actorID", actorID.String()),
			zap.String("step", step))
	}

	return nil
}
