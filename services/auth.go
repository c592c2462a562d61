package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/logger"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// UserFinder is the slice of the user repository auth depends on.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (models.User, bool)
	Create(ctx context.Context, user models.User) int
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is disabled")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrRegistration       = errors.New("could not create account")
)

// AuthService implements login and registration on top of the user
// repository. Lookup is by exact, case-sensitive email match; when the
// backend is unreachable the lookup reads as absent and login fails the
// same way a wrong password does.
type AuthService struct {
	users        UserFinder
	sellerRoleID int
	logger       *zap.Logger
}

func NewAuthService(users UserFinder, sellerRoleID int, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, sellerRoleID: sellerRoleID, logger: logger}
}

// Login validates the form locally, then checks the credentials against the
// backend. The comparison is plaintext because the backend stores passwords
// in clear.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (models.User, error) {
	if err := ValidateLogin(in); err != nil {
		return models.User{}, err
	}

	user, found := s.users.GetByEmail(ctx, in.Email)
	if !found || user.Password != in.Password {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.Active {
		return models.User{}, ErrInactiveAccount
	}

	logger.For(ctx, s.logger).Info("user logged in",
		zap.Int("user_id", user.ID),
		zap.Bool("seller", user.IsSeller(s.sellerRoleID)),
	)
	return user, nil
}

// Register validates the form locally, rejects duplicate emails, and
// creates the account.
func (s *AuthService) Register(ctx context.Context, in RegistrationInput) (int, error) {
	if err := ValidateRegistration(in); err != nil {
		return 0, err
	}
	if _, taken := s.users.GetByEmail(ctx, in.Email); taken {
		return 0, ErrEmailTaken
	}

	id := s.users.Create(ctx, models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Active:   true,
	})
	if id < 0 {
		return 0, ErrRegistration
	}
	logger.For(ctx, s.logger).Info("user registered", zap.Int("user_id", id))
	return id, nil
}
