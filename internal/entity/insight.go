package entity

// BookInsight is the read-side aggregate for one book: its rating summary
// and, when the text-generation collaborator cooperated, a summary of its
// reviews. Summary stays empty on collaborator failure.
type BookInsight struct {
	Summary string
	Rating  RatingSummary
}
