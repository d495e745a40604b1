package book

type CreateBookReq struct {
	BookID       string  `json:"book_id"`
	Title        string  `json:"title" validate:"required"`
	Author       string  `json:"author" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Description  *string `json:"description"`
	BorrowPolicy string  `json:"borrow_policy" validate:"omitempty,oneof=standard timed daily_return"`
	ExpiryHours  *int    `json:"expiry_hours" validate:"omitempty,gt=0"`
}
