// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"testing"

	"libraryapi/model"
	bookrepo "libraryapi/repository/book"
	booksvc "libraryapi/service/book"

	"github.com/stretchr/testify/require"
)

func TestCreate_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := booksvc.New(bookrepo.New())

	b, err := svc.Create(ctx, model.Book{Title: "X", Author: "Y", Category: "Z"})
	require.NoError(t, err)
	require.NotEmpty(t, b.BookID)
	require.Equal(t, model.PolicyStandard, b.BorrowPolicy)
	require.False(t, b.IsBorrowed)
	require.Nil(t, b.BorrowedBy)
	require.Nil(t, b.BorrowedAt)
	require.False(t, b.CreatedAt.IsZero())
}

func TestCreate_IgnoresBorrowState(t *testing.T) {
	ctx := context.Background()
	svc := booksvc.New(bookrepo.New())

	email := "sneaky@x.com"
	b, err := svc.Create(ctx, model.Book{
		BookID:     "b1",
		Title:      "X",
		Author:     "Y",
		Category:   "Z",
		IsBorrowed: true,
		BorrowedBy: &email,
	})
	require.NoError(t, err)
	require.False(t, b.IsBorrowed)
	require.Nil(t, b.BorrowedBy)
}

func TestCreate_OverwritesDuplicateID(t *testing.T) {
	ctx := context.Background()
	br := bookrepo.New()
	svc := booksvc.New(br)

	_, err := svc.Create(ctx, model.Book{BookID: "b1", Title: "old", Author: "Y", Category: "Z"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.Book{BookID: "b1", Title: "new", Author: "Y", Category: "Z"})
	require.NoError(t, err)

	got, err := svc.Detail(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "new", got.Title)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
