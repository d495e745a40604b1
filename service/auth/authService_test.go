// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"libraryapi/model"
	userrepo "libraryapi/repository/user"
	"libraryapi/util/hash"
	jwtutil "libraryapi/util/jwt"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, userrepo.ErrNotFound
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	var created *model.User
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			created = u
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, err := svc.Register(ctx, model.RegisterReq{
		Email:    "USER@Example.COM",
		Password: "supersecret",
		Name:     "Halim",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, model.RoleUser, u.Role)
	require.NotEmpty(t, u.PasswordHash)
	require.True(t, hash.Check(u.PasswordHash, "supersecret"))
	require.NotNil(t, created)
	require.Equal(t, "user@example.com", created.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return userrepo.ErrDuplicate
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Email:    "taken@example.com",
		Password: "123456",
		Name:     "Halim",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("store down")
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Email:    "ok@example.com",
		Password: "123456",
		Name:     "Ok",
	})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrEmailTaken))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			require.Equal(t, "user@example.com", email)
			return &model.User{
				Email:        "user@example.com",
				Name:         "Halim",
				Role:         model.RoleUser,
				PasswordHash: hashed,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{
		Email:    "User@Example.com",
		Password: pw,
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)

	// token subject is the user's email
	sub, err := jwtutil.ParseSubject("test-secret", tok)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", sub)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleUser,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}
