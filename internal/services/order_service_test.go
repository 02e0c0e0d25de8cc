package services_test

import (
	"fmt"
	"testing"

	"stylehub/internal/models"
	"stylehub/internal/repositories"
	"stylehub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderCreated(body []byte) error {
	args := m.Called(body)
	return args.Error(0)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "buyer@example.com"}
	items := []models.OrderItem{
		{ProductID: "prod-1", Name: "Laptop", Quantity: 1, Price: 120000},
	}

	t.Run("success sends confirmation email", func(t *testing.T) {
		orderRepo := repositories.NewMockOrderRepository()
		userRepo := new(MockUserRepository)
		mail := new(MockMailer)
		pub := new(MockPublisher)
		svc := services.NewOrderService(orderRepo, userRepo, mail, pub)

		userRepo.On("GetByID", "user-1").Return(user, nil).Once()
		pub.On("PublishOrderCreated", mock.Anything).Return(nil).Once()
		mail.On("Send", "buyer@example.com", "Order Confirmation", "Thank you for your order! Order total: $1200.").Return(nil).Once()

		order, err := svc.PlaceOrder("user-1", items, 120000)
		assert.NoError(t, err)
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, "user-1", order.UserID)
		assert.Equal(t, float64(120000), order.Total)

		persisted, err := orderRepo.GetByUserID("user-1")
		assert.NoError(t, err)
		assert.Len(t, persisted, 1)
		mail.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("email failure still fails the call after the order persisted", func(t *testing.T) {
		orderRepo := repositories.NewMockOrderRepository()
		userRepo := new(MockUserRepository)
		mail := new(MockMailer)
		svc := services.NewOrderService(orderRepo, userRepo, mail, nil)

		userRepo.On("GetByID", "user-1").Return(user, nil).Once()
		mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("smtp unreachable")).Once()

		_, err := svc.PlaceOrder("user-1", items, 120000)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "confirmation email failed")

		// No compensating rollback: the order is already there.
		persisted, repoErr := orderRepo.GetByUserID("user-1")
		assert.NoError(t, repoErr)
		assert.Len(t, persisted, 1)
	})

	t.Run("publish failure never affects the order", func(t *testing.T) {
		orderRepo := repositories.NewMockOrderRepository()
		userRepo := new(MockUserRepository)
		mail := new(MockMailer)
		pub := new(MockPublisher)
		svc := services.NewOrderService(orderRepo, userRepo, mail, pub)

		userRepo.On("GetByID", "user-1").Return(user, nil).Once()
		pub.On("PublishOrderCreated", mock.Anything).Return(fmt.Errorf("broker down")).Once()
		mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.PlaceOrder("user-1", items, 120000)
		assert.NoError(t, err)
		pub.AssertExpectations(t)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	userRepo := new(MockUserRepository)
	mail := new(MockMailer)
	svc := services.NewOrderService(orderRepo, userRepo, mail, nil)

	assert.NoError(t, orderRepo.Create(&models.Order{UserID: "user-1", Total: 100}))
	assert.NoError(t, orderRepo.Create(&models.Order{UserID: "user-2", Total: 200}))
	assert.NoError(t, orderRepo.Create(&models.Order{UserID: "user-1", Total: 300}))

	mine, err := svc.ListOrders("user-1")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "user-1", o.UserID)
	}

	theirs, err := svc.ListOrders("user-2")
	assert.NoError(t, err)
	assert.Len(t, theirs, 1)
}
