package booksvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"libraryapi/model"
	bookrepo "libraryapi/repository/book"
)

type Service interface {
	Create(ctx context.Context, b model.Book) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Detail(ctx context.Context, id string) (*model.Book, error)
}

type service struct{ br bookrepo.Repo }

func New(br bookrepo.Repo) Service { return &service{br: br} }

// Create inserts a fresh Available book. A missing book_id gets a
// generated uuid, a missing policy defaults to standard.
func (s *service) Create(ctx context.Context, b model.Book) (*model.Book, error) {
	if b.BookID == "" {
		b.BookID = uuid.NewString()
	}
	if b.BorrowPolicy == "" {
		b.BorrowPolicy = model.PolicyStandard
	}
	b.IsBorrowed = false
	b.BorrowedBy = nil
	b.BorrowedAt = nil
	b.CreatedAt = time.Now().UTC()

	if err := s.br.Insert(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) List(ctx context.Context) ([]model.Book, error) { return s.br.List(ctx) }

func (s *service) Detail(ctx context.Context, id string) (*model.Book, error) {
	return s.br.ByID(ctx, id)
}
