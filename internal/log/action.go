package log

const (
	AddBook         = "add_book"
	GetBookInfo     = "get_book_info"
	ListBooks       = "list_books"
	UpdateBook      = "update_book"
	DeleteBook      = "delete_book"
	AddReview       = "add_review"
	GetReviewInfo   = "get_review_info"
	ListBookReviews = "list_book_reviews"
	UpdateReview    = "update_review"
	DeleteReview    = "delete_review"
	AverageRating   = "average_rating"
	BookSummary     = "book_summary"
	Recommendations = "recommendations"
	GenerateSummary = "generate_summary"
)
