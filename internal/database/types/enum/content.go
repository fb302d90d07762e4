package enum

// ContentKind represents the type of community content an interaction targets.
//
//go:generate go tool enumer -type=ContentKind -trimprefix=ContentKind -transform=snake
type ContentKind int

const (
	// ContentKindQuestion is a community question.
	ContentKindQuestion ContentKind = iota
	// ContentKindAnswer is an answer posted under a question.
	ContentKindAnswer
)
