package auth

import (
	"context"
	"errors"

	"github.com/georgemunganga/pooja-store/internal/modules/user"
)

type service struct {
	users  user.Service
	tokens *Tokens
}

// NewService creates a new auth service.
func NewService(users user.Service, tokens *Tokens) Service {
	return &service{users: users, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.RegisterUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.session(u)
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *service) session(u *user.User) (*Session, error) {
	token, err := s.tokens.Issue(u.ID.String(), u.Email)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: SessionUser{ID: u.ID, Email: u.Email}}, nil
}
