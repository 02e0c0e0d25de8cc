package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"stylehub/internal/models"
	"stylehub/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors handlers map to the HTTP error taxonomy.
var (
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials is returned for any failed login. It is
	// deliberately generic so a caller cannot tell whether the email
	// exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RoleCustomer is the role claim embedded in every issued token.
const RoleCustomer = "customer"

// AuthService handles registration, login, the login audit log, and
// token issuance/validation.
type AuthService struct {
	userRepo     repositories.UserRepository
	loginLogRepo repositories.LoginLogRepository
	jwtSecret    []byte
	tokenDurat   time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, loginLogRepo repositories.LoginLogRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		loginLogRepo: loginLogRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   time.Hour, // Token valid for 1 hour
	}
}

// RegisterUser hashes the password and saves a new user. The plaintext
// password is never persisted or logged.
func (s *AuthService) RegisterUser(email, password string) error {
	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns a signed JWT on success.
// Exactly one audit record is appended per call, whatever the outcome.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.recordAttempt(email, models.LoginFailure)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.recordAttempt(email, models.LoginFailure)
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.recordAttempt(email, models.LoginFailure)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.recordAttempt(email, models.LoginSuccess)
	return tokenString, nil
}

// recordAttempt appends one audit record. Audit write failures are
// logged; they never change the login outcome.
func (s *AuthService) recordAttempt(email, status string) {
	entry := &models.LoginLog{
		Email:     email,
		LoginTime: time.Now(),
		Status:    status,
	}
	if err := s.loginLogRepo.Create(entry); err != nil {
		log.Printf("Failed to record login attempt for %s: %v", email, err)
	}
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
