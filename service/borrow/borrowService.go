package borrowsvc

import (
	"context"
	"errors"
	"time"

	"libraryapi/model"
	bookrepo "libraryapi/repository/book"
)

// errors used by controllers

type ErrCode string

const (
	ErrBookNotFound    ErrCode = "BOOK_NOT_FOUND"
	ErrAlreadyBorrowed ErrCode = "ALREADY_BORROWED"
	ErrCannotReturn    ErrCode = "CANNOT_RETURN"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Borrow moves an Available book to borrowed-by-email.
	Borrow(ctx context.Context, bookID, email string) (string, error)

	// Return moves a book borrowed by email back to Available.
	Return(ctx context.Context, bookID, email string) (string, error)
}

type service struct{ br bookrepo.Repo }

func New(br bookrepo.Repo) Service { return &service{br: br} }

// Borrow checks and claims inside the store's write lock, so of two
// racing borrowers only one sees IsBorrowed still false.
func (s *service) Borrow(ctx context.Context, bookID, email string) (string, error) {
	var title string
	err := s.br.Mutate(ctx, bookID, func(b *model.Book) error {
		if b.IsBorrowed {
			return makeErr(ErrAlreadyBorrowed)
		}
		now := time.Now().UTC()
		b.IsBorrowed = true
		b.BorrowedBy = &email
		b.BorrowedAt = &now
		title = b.Title
		return nil
	})
	if err != nil {
		if errors.Is(err, bookrepo.ErrNotFound) {
			return "", makeErr(ErrBookNotFound)
		}
		return "", err
	}
	return title, nil
}

// Return only succeeds for the exact borrower recorded at borrow time.
// Anyone else, admin included, gets ErrCannotReturn, as does a return
// of a book that is not out.
func (s *service) Return(ctx context.Context, bookID, email string) (string, error) {
	var title string
	err := s.br.Mutate(ctx, bookID, func(b *model.Book) error {
		if !b.IsBorrowed || b.BorrowedBy == nil || *b.BorrowedBy != email {
			return makeErr(ErrCannotReturn)
		}
		b.IsBorrowed = false
		b.BorrowedBy = nil
		b.BorrowedAt = nil
		title = b.Title
		return nil
	})
	if err != nil {
		if errors.Is(err, bookrepo.ErrNotFound) {
			return "", makeErr(ErrBookNotFound)
		}
		return "", err
	}
	return title, nil
}
