package types_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
)

func testStats() *types.ActorStatistics {
	return &types.ActorStatistics{
		ActorID:         uuid.New(),
		QuestionCount:   12,
		AnswerCount:     30,
		BestAnswerCount: 5,
		ReputationScore: 800,
		SubjectBestAnswers: map[string]int64{
			"math": 4,
		},
	}
}

func TestCriterion_Satisfied(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		criterion types.Criterion
		want      bool
	}{
		{
			name:      "question count met",
			criterion: types.Criterion{Kind: enum.CriterionKindQuestionCount, Threshold: 10},
			want:      true,
		},
		{
			name:      "answer count not met",
			criterion: types.Criterion{Kind: enum.CriterionKindAnswerCount, Threshold: 50},
			want:      false,
		},
		{
			name:      "total posts combines questions and answers",
			criterion: types.Criterion{Kind: enum.CriterionKindTotalPosts, Threshold: 42},
			want:      true,
		},
		{
			name:      "reputation threshold at boundary",
			criterion: types.Criterion{Kind: enum.CriterionKindReputationScore, Threshold: 800},
			want:      true,
		},
		{
			name:      "subject scoped count",
			criterion: types.Criterion{Kind: enum.CriterionKindSubjectBestAnswerCount, Threshold: 4, Subject: "math"},
			want:      true,
		},
		{
			name:      "unknown subject reads as zero",
			criterion: types.Criterion{Kind: enum.CriterionKindSubjectBestAnswerCount, Threshold: 1, Subject: "physics"},
			want:      false,
		},
		{
			name:      "manual only never satisfied automatically",
			criterion: types.Criterion{Kind: enum.CriterionKindManualOnly, Threshold: 0},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.criterion.Satisfied(testStats()))
		})
	}
}

func TestNewBadgeDefinition(t *testing.T) {
	t.Parallel()

	def, err := types.NewBadgeDefinition(
		"problem_solver", "Problem Solver", "Had 25 answers marked best",
		"rare", "best_answer_count", 25, "")
	require.NoError(t, err)
	assert.Equal(t, enum.BadgeRarityRare, def.Rarity)
	assert.Equal(t, enum.CriterionKindBestAnswerCount, def.Criterion.Kind)
	assert.False(t, def.ManualOnly())

	_, err = types.NewBadgeDefinition("x", "X", "", "mythic", "best_answer_count", 1, "")
	require.Error(t, err)

	_, err = types.NewBadgeDefinition("x", "X", "", "rare", "karma", 1, "")
	require.Error(t, err)

	manual, err := types.NewBadgeDefinition("pillar", "Pillar", "", "legendary", "manual_only", 0, "")
	require.NoError(t, err)
	assert.True(t, manual.ManualOnly())
}
