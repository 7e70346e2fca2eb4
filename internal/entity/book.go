package entity

// Book is the aggregate root. Reviews exist only while their book does.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre,omitempty"`
	Year   int    `json:"year,omitempty"`
	ISBN   string `json:"isbn,omitempty"`
}

// BookUpdate carries a partial update. Nil fields keep their stored value.
type BookUpdate struct {
	Title  *string
	Author *string
	Genre  *string
	Year   *int
	ISBN   *string
}

// BookFilter narrows and pages a listing. Zero values mean "no filter".
type BookFilter struct {
	Author   string
	Genre    string
	YearFrom *int
	YearTo   *int
	Limit    int
	Offset   int
}
