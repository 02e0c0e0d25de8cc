package services_test

import (
	"fmt"
	"testing"
	"time"

	"stylehub/internal/models"
	"stylehub/internal/repositories"
	"stylehub/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	auditLog := repositories.NewMockLoginLogRepository()
	authService := services.NewAuthService(mockRepo, auditLog, testJWTSecret)

	// Successful registration hashes the password before persisting
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, fmt.Errorf("user with email new@example.com not found")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		if u.Email != "new@example.com" || u.Role != services.RoleCustomer {
			return false
		}
		// The stored password must never equal the plaintext
		if u.Password == "password123" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")) == nil
	})).Return(nil).Once()

	err := authService.RegisterUser("new@example.com", "password123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	assert.Empty(t, auditLog.Entries(), "registration must not write audit records")

	// Duplicate email
	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "1", Email: "taken@example.com"}, nil).Once()
	err = authService.RegisterUser("taken@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     services.RoleCustomer,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		auditLog := repositories.NewMockLoginLogRepository()
		authService := services.NewAuthService(mockRepo, auditLog, testJWTSecret)

		mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

		token, err := authService.LoginUser(user.Email, "password123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := authService.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims["user_id"])
		assert.Equal(t, services.RoleCustomer, claims["role"])

		// One-hour validity window from issuance
		exp := int64(claims["exp"].(float64))
		assert.InDelta(t, time.Now().Add(time.Hour).Unix(), exp, 5)

		entries := auditLog.Entries()
		assert.Len(t, entries, 1)
		assert.Equal(t, user.Email, entries[0].Email)
		assert.Equal(t, models.LoginSuccess, entries[0].Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		auditLog := repositories.NewMockLoginLogRepository()
		authService := services.NewAuthService(mockRepo, auditLog, testJWTSecret)

		mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

		_, err := authService.LoginUser(user.Email, "wrongpassword")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)

		entries := auditLog.Entries()
		assert.Len(t, entries, 1)
		assert.Equal(t, models.LoginFailure, entries[0].Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email gets the same generic error", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		auditLog := repositories.NewMockLoginLogRepository()
		authService := services.NewAuthService(mockRepo, auditLog, testJWTSecret)

		mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com not found")).Once()

		_, err := authService.LoginUser("nobody@example.com", "password123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)

		entries := auditLog.Entries()
		assert.Len(t, entries, 1)
		assert.Equal(t, "nobody@example.com", entries[0].Email)
		assert.Equal(t, models.LoginFailure, entries[0].Status)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	auditLog := repositories.NewMockLoginLogRepository()
	authService := services.NewAuthService(mockRepo, auditLog, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    services.RoleCustomer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])

	// Tampering with any character must invalidate the token
	tampered := []byte(validTokenString)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}
	_, err = authService.ValidateToken(string(tampered))
	assert.Error(t, err)

	// Test token signed with a different secret
	wrongKey, _ := token.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(wrongKey)
	assert.Error(t, err)

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
