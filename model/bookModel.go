// model/book.go
package model

import "time"

type BorrowPolicy string

const (
	PolicyStandard    BorrowPolicy = "standard"
	PolicyTimed       BorrowPolicy = "timed"
	PolicyDailyReturn BorrowPolicy = "daily_return"
)

// Book is a single lendable title. borrow_policy and expiry_hours are
// stored as-is and not evaluated anywhere yet.
type Book struct {
	BookID       string       `json:"book_id"`
	Title        string       `json:"title"`
	Author       string       `json:"author"`
	Category     string       `json:"category"`
	Description  *string      `json:"description"`
	BorrowPolicy BorrowPolicy `json:"borrow_policy"`
	ExpiryHours  *int         `json:"expiry_hours"`
	IsBorrowed   bool         `json:"is_borrowed"`
	BorrowedBy   *string      `json:"borrowed_by"`
	BorrowedAt   *time.Time   `json:"borrowed_at"`
	CreatedAt    time.Time    `json:"created_at"`
}
