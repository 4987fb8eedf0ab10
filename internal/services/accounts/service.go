package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"leadbook/internal/domain"
	"leadbook/internal/ports"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	users ports.UserRepository
	cost  int
	clock func() time.Time
	log   logrus.FieldLogger
}

type Option func(*Service)

// WithCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithCost(cost int) Option { return func(s *Service) { s.cost = cost } }

func WithLogger(log logrus.FieldLogger) Option { return func(s *Service) { s.log = log } }

func New(users ports.UserRepository, opts ...Option) *Service {
	s := &Service{users: users, cost: bcrypt.DefaultCost, clock: time.Now, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(s)
	}
	return s
}

type registration struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Name     string `json:"name" validate:"notblank,max=200"`
}

func (s *Service) Register(ctx context.Context, username, password, name string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if err := domain.Validate(registration{Username: username, Password: password, Name: name}); err != nil {
		return domain.User{}, err
	}
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, domain.NewValidationError("username", "username is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.users.InsertUser(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		CreatedAt:    s.clock(),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	s.log.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown username and for a
// wrong password alike.
func (s *Service) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %d: %w", id, err)
	}
	return u, nil
}
