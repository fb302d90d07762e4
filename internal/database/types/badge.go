package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types/enum"
)

var (
	ErrBadgeNotFound      = errors.New("badge definition not found")
	ErrBadgeAlreadyEarned = errors.New("badge already earned by this actor")
)

// Criterion is a tagged variant over the closed set of badge criterion
// kinds. Criteria are single-dimensional: a definition never combines two
// independent thresholds.
type Criterion struct {
	Kind      enum.CriterionKind
	Threshold int64
	Subject   string // subject_best_answer_count only
}

// Current returns the statistic this criterion compares, read from stats.
func (c Criterion) Current(stats *ActorStatistics) int64 {
	switch c.Kind {
	case enum.CriterionKindQuestionCount:
		return stats.QuestionCount
	case enum.CriterionKindAnswerCount:
		return stats.AnswerCount
	case enum.CriterionKindBestAnswerCount:
		return stats.BestAnswerCount
	case enum.CriterionKindReputationScore:
		return stats.ReputationScore
	case enum.CriterionKindTotalPosts:
		return stats.QuestionCount + stats.AnswerCount
	case enum.CriterionKindSubjectBestAnswerCount:
		return stats.SubjectBestAnswers[c.Subject]
	default:
		return 0
	}
}

// Satisfied reports whether stats meet the criterion. Manual-only criteria
// are never satisfied by the automatic path.
func (c Criterion) Satisfied(stats *ActorStatistics) bool {
	if c.Kind == enum.CriterionKindManualOnly {
		return false
	}
	return c.Current(stats) >= c.Threshold
}

// BadgeDefinition describes one earnable badge.
type BadgeDefinition struct {
	ID          string
	Name        string
	Description string
	Rarity      enum.BadgeRarity
	Criterion   Criterion
}

// ManualOnly reports whether the badge can only be granted by hand.
func (d *BadgeDefinition) ManualOnly() bool {
	return d.Criterion.Kind == enum.CriterionKindManualOnly
}

// NewBadgeDefinition builds a definition from configuration strings,
// rejecting unknown rarity or criterion names.
func NewBadgeDefinition(id, name, description, rarity, criterion string, threshold int64, subject string) (*BadgeDefinition, error) {
	r, err := enum.BadgeRarityString(rarity)
	if err != nil {
		return nil, fmt.Errorf("badge %s: invalid rarity: %w", id, err)
	}

	k, err := enum.CriterionKindString(criterion)
	if err != nil {
		return nil, fmt.Errorf("badge %s: invalid criterion: %w", id, err)
	}

	return &BadgeDefinition{
		ID:          id,
		Name:        name,
		Description: description,
		Rarity:      r,
		Criterion:   Criterion{Kind: k, Threshold: threshold, Subject: subject},
	}, nil
}

// AwardedBadge records that an actor holds a badge. The (actor, badge)
// pair is unique; a badge can never be awarded twice to the same actor.
type AwardedBadge struct {
	ActorID   uuid.UUID `bun:",pk,type:uuid"`
	BadgeID   string    `bun:",pk"`
	AwardedAt time.Time `bun:",notnull"`
	AwardedBy uuid.UUID `bun:",type:uuid,nullzero"` // Set for manual grants only
	Reason    string    `bun:",nullzero"`           // Manual grants only
}

// BadgeProgress is the (current, required, percentage) triple for one
// unsatisfied badge.
type BadgeProgress struct {
	Current    int64
	Required   int64
	Percentage float64
}
