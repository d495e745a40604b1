package bookrepo

import (
	"context"
	"errors"
	"sync"

	"libraryapi/model"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	// Insert stores b, overwriting any record with the same id.
	Insert(ctx context.Context, b *model.Book) error
	// List returns all books in insertion order.
	List(ctx context.Context) ([]model.Book, error)
	ByID(ctx context.Context, id string) (*model.Book, error)
	// Mutate runs fn on the stored record under the write lock.
	Mutate(ctx context.Context, id string, fn func(*model.Book) error) error
}

type repo struct {
	mu    sync.RWMutex
	books map[string]*model.Book
	order []string
}

func New() Repo {
	return &repo{books: make(map[string]*model.Book)}
}

func (r *repo) Insert(ctx context.Context, b *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.BookID]; !ok {
		r.order = append(r.order, b.BookID)
	}
	cp := *b
	r.books[b.BookID] = &cp
	return nil
}

func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Book, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.books[id])
	}
	return out, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

// Mutate is the linearization point for borrow/return: fn decides and
// writes while no other goroutine can touch the record.
func (r *repo) Mutate(ctx context.Context, id string, fn func(*model.Book) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return ErrNotFound
	}
	return fn(b)
}
