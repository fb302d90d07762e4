package types

import "github.com/google/uuid"

// ActorStatistics are the aggregates badge criteria evaluate against.
// They are supplied by the statistics provider, never computed by the
// badge evaluator itself.
type ActorStatistics struct {
	ActorID            uuid.UUID
	QuestionCount      int64
	AnswerCount        int64
	BestAnswerCount    int64
	ReputationScore    int64
	SubjectBestAnswers map[string]int64 // Best-answer counts keyed by subject code
}
