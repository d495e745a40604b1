package userrepo

import (
	"context"
	"testing"

	"libraryapi/model"

	"github.com/stretchr/testify/require"
)

func TestCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	r := New()

	u := &model.User{Email: "a@x.com", Name: "Alice", Role: model.RoleUser}
	require.NoError(t, r.Create(ctx, u))

	err := r.Create(ctx, &model.User{Email: "a@x.com", Name: "Other"})
	require.ErrorIs(t, err, ErrDuplicate)

	// first record untouched
	got, err := r.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
}

func TestByEmail_NotFound(t *testing.T) {
	r := New()

	_, err := r.ByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestByEmail_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.Create(ctx, &model.User{Email: "a@x.com", Name: "Alice"}))

	got, err := r.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := r.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", again.Name)
}
