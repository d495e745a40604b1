package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"libraryapi/model"
	userrepo "libraryapi/repository/user"
	"libraryapi/util/hash"
	jwtutil "libraryapi/util/jwt"
)

var (
	ErrEmailTaken   = errors.New("user already exists")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service {
	return &service{ur: ur, secret: secret}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, error) {
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        normalizeEmail(req.Email),
		Name:         req.Name,
		Role:         model.RoleUser,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a 7-day token bound to the
// user's email. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	u, err := s.ur.ByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", ErrInvalidCreds
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}

	token, err := jwtutil.Issue(s.secret, u.Email, jwtutil.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
