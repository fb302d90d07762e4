package enum

// BadgeRarity represents how hard a badge is to earn.
//
//go:generate go tool enumer -type=BadgeRarity -trimprefix=BadgeRarity -transform=snake
type BadgeRarity int

const (
	BadgeRarityCommon BadgeRarity = iota
	BadgeRarityUncommon
	BadgeRarityRare
	BadgeRarityEpic
	BadgeRarityLegendary
)

// CriterionKind identifies which single statistic a badge criterion compares.
//
//go:generate go tool enumer -type=CriterionKind -trimprefix=CriterionKind -transform=snake
type CriterionKind int

const (
	// CriterionKindQuestionCount compares the number of questions authored.
	CriterionKindQuestionCount CriterionKind = iota
	// CriterionKindAnswerCount compares the number of answers authored.
	CriterionKindAnswerCount
	// CriterionKindBestAnswerCount compares the number of answers marked best.
	CriterionKindBestAnswerCount
	// CriterionKindReputationScore compares the actor's current reputation.
	CriterionKindReputationScore
	// CriterionKindTotalPosts compares questions plus answers authored.
	CriterionKindTotalPosts
	// CriterionKindSubjectBestAnswerCount compares best answers within one subject.
	CriterionKindSubjectBestAnswerCount
	// CriterionKindManualOnly marks badges that only administrators can grant.
	CriterionKindManualOnly
)
