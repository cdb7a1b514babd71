package stats

import "context"

// Summary holds the aggregate counters shown on the dashboard.
type Summary struct {
	TotalBooks      int `json:"total_books"`
	TotalAuthors    int `json:"total_authors"`
	TotalMembers    int `json:"total_members"`
	TotalCategories int `json:"total_categories"`
	TotalReviews    int `json:"total_reviews"`
	ActiveLoans     int `json:"active_loans"`
}

// Repository defines the contract for reading aggregate statistics.
type Repository interface {
	Summary(ctx context.Context) (Summary, error)
}
