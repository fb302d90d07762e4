package enum

// ReportReason represents the closed set of reasons a report may carry.
//
//go:generate go tool enumer -type=ReportReason -trimprefix=ReportReason -transform=snake
type ReportReason int

const (
	// ReportReasonSpam flags unsolicited or repetitive content.
	ReportReasonSpam ReportReason = iota
	// ReportReasonHarassment flags content targeting another actor.
	ReportReasonHarassment
	// ReportReasonInappropriateContent flags content unsuitable for the community.
	ReportReasonInappropriateContent
	// ReportReasonMisinformation flags factually wrong content presented as fact.
	ReportReasonMisinformation
	// ReportReasonOffTopic flags content unrelated to the subject.
	ReportReasonOffTopic
	// ReportReasonOther covers reasons outside the named categories.
	ReportReasonOther
)
