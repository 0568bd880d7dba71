package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"hospital-hms/internal/adapters/persistence/models"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/core/domain"
	"hospital-hms/internal/pkg/jwt"
	"hospital-hms/internal/pkg/password"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles staff identity and session tokens
type AuthService struct {
	userRepo repositories.UserRepository
	signer   *jwt.Signer
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, signer *jwt.Signer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		signer:   signer,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (in *RegisterInput) validate() error {
	var v domain.Violations

	if in.Name == "" {
		v.Add("name", "is required")
	}
	if in.Email == "" {
		v.Add("email", "is required")
	} else if !emailPattern.MatchString(in.Email) {
		v.Add("email", "must be a valid email address")
	}
	if in.Password == "" {
		v.Add("password", "is required")
	} else if len(in.Password) < password.MinLength {
		v.Addf("password", "must be at least %d characters", password.MinLength)
	}
	if in.Role == "" {
		v.Add("role", "is required")
	} else if !domain.OneOf(in.Role, domain.Roles) {
		v.Add("role", "must be one of admin, doctor, nurse, registration_clerk")
	}

	return v.Err()
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register registers a new staff identity and issues a session token.
// Emails are unique case-insensitively: they are lowercased before
// both the uniqueness check and persistence.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.validate(); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", domain.NewConflict("User already exists")
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.signer.Sign(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	log.Printf("User registered: %s (%s)", user.Email, user.Role)

	return user, token, nil
}

// Login authenticates a staff identity. Unknown email and wrong password
// return the same generic error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*models.User, string, error) {
	var v domain.Violations
	if input.Email == "" {
		v.Add("email", "is required")
	}
	if input.Password == "" {
		v.Add("password", "is required")
	}
	if err := v.Err(); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", domain.NewUnauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, "", domain.NewUnauthorized("Invalid credentials")
	}

	token, err := s.signer.Sign(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	log.Printf("User logged in: %s", user.Email)

	return user, token, nil
}

// Authenticate resolves a session token to its identity. The identity is
// re-fetched from the store so revoked accounts stop resolving as soon as
// they disappear.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.NewUnauthorized("Token expired")
		}
		return nil, domain.NewUnauthorized("Invalid token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewUnauthorized("User not found")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.NewUnauthorized("User account is deactivated")
	}

	return user, nil
}
