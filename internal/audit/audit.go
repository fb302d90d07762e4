// Package audit verifies the reputation ledger invariant: every actor's
// stored score equals the sum of their recorded deltas, and the running
// sum never dips below zero at any point in the history.
package audit

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/studyhive/community-core/internal/database"
	"github.com/studyhive/community-core/internal/database/types"
	"go.uber.org/zap"
)

// verifyConcurrency bounds parallel per-actor verification.
const verifyConcurrency = 8

// Finding kinds reported by the verifier.
const (
	FindingScoreMismatch = "score_mismatch"
	FindingNegativeSum   = "negative_running_sum"
)

// Finding describes one detected ledger inconsistency.
type Finding struct {
	ActorID     uuid.UUID
	Kind        string
	StoredScore int64
	LedgerSum   int64
	EventCount  int
	// Index of the first event at which the running sum went negative,
	// for negative_running_sum findings.
	EventIndex int
}

func (f *Finding) String() string {
	switch f.Kind {
	case FindingNegativeSum:
		return fmt.Sprintf("actor %s: running sum negative at event %d of %d",
			f.ActorID, f.EventIndex, f.EventCount)
	default:
		return fmt.Sprintf("actor %s: ledger sum %d, stored score %d over %d events",
			f.ActorID, f.LedgerSum, f.StoredScore, f.EventCount)
	}
}

// Replay folds a ledger in commit order. It returns the final sum and the
// index of the first event at which the running sum went negative, or -1
// when it never did. Deltas are stored post-floor, so a well-formed
// ledger sums to the score without ever crossing zero.
func Replay(events []*types.ReputationEvent) (sum int64, negativeAt int) {
	negativeAt = -1
	for i, event := range events {
		sum += event.Delta
		if sum < 0 && negativeAt == -1 {
			negativeAt = i
		}
	}
	return sum, negativeAt
}

// Verifier checks stored scores against ledger replays.
type Verifier struct {
	db     database.Client
	logger *zap.Logger
}

// NewVerifier creates a verifier over the given database client.
func NewVerifier(db database.Client, logger *zap.Logger) *Verifier {
	return &Verifier{db: db, logger: logger.Named("audit")}
}

// VerifyActor replays one actor's ledger. Returns nil when consistent.
func (v *Verifier) VerifyActor(ctx context.Context, actorID uuid.UUID) (*Finding, error) {
	events, err := v.db.Model().Reputation().EventsAsc(ctx, actorID)
	if err != nil {
		return nil, err
	}

	score, err := v.db.Model().Actor().Score(ctx, actorID)
	if err != nil {
		return nil, err
	}

	sum, negativeAt := Replay(events)

	if negativeAt >= 0 {
		return &Finding{
			ActorID:     actorID,
			Kind:        FindingNegativeSum,
			StoredScore: score,
			LedgerSum:   sum,
			EventCount:  len(events),
			EventIndex:  negativeAt,
		}, nil
	}

	if sum != score {
		return &Finding{
			ActorID:     actorID,
			Kind:        FindingScoreMismatch,
			StoredScore: score,
			LedgerSum:   sum,
			EventCount:  len(events),
			EventIndex:  -1,
		}, nil
	}

	return nil, nil
}

// VerifyAll replays every actor's ledger and returns all findings.
func (v *Verifier) VerifyAll(ctx context.Context) ([]*Finding, error) {
	ids, err := v.db.Model().Actor().IDs(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		findings []*Finding
	)

	p := pool.New().WithContext(ctx).WithMaxGoroutines(verifyConcurrency).WithCancelOnError()
	for _, id := range ids {
		p.Go(func(ctx context.Context) error {
			finding, err := v.VerifyActor(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to verify actor %s: %w", id, err)
			}
			if finding != nil {
				mu.Lock()
				findings = append(findings, finding)
				mu.Unlock()

				v.logger.Warn("Ledger inconsistency found",
					zap.String("actorID", finding.ActorID.String()),
					zap.String("kind", finding.Kind),
					zap.Int64("storedScore", finding.StoredScore),
					zap.Int64("ledgerSum", finding.LedgerSum))
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	v.logger.Info("Ledger verification complete",
		zap.Int("actors", len(ids)),
		zap.Int("findings", len(findings)))

	return findings, nil
}
