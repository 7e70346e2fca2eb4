package entity

type Review struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"book_id"`
	ReviewerID int64   `json:"reviewer_id"`
	Text       string  `json:"text"`
	Rating     float64 `json:"rating"`
}

// ReviewUpdate carries a partial update. Nil fields keep their stored value.
type ReviewUpdate struct {
	ReviewerID *int64
	Text       *string
	Rating     *float64
}

// RatingSummary is the aggregate over all reviews of one book.
// Count == 0 is the distinguished "no rating yet" state: Average is
// meaningless then and must not be read as a real 0.
type RatingSummary struct {
	Average float64
	Count   int64
}

func (r RatingSummary) HasRatings() bool {
	return r.Count > 0
}
