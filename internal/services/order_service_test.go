package services_test

import (
	"fmt"
	"testing"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUsername(username string) ([]models.Order, error) {
	args := m.Called(username)
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewOrderService(mockOrders, mockUsers, mockPub)

	mockUsers.On("GetByUsername", "alice").
		Return(&models.User{Username: "alice"}, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Order).ID = 1
	}).Return(nil).Once()
	mockPub.On("PublishOrderCreated", mock.Anything).Return(nil).Once()

	items := []map[string]any{{"id": 1, "qty": 1}}
	order, err := service.CreateOrder("alice", items, 199)

	assert.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "alice", order.Username)
	assert.Equal(t, items, order.Items)
	assert.Equal(t, 199.0, order.Total)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.NotEmpty(t, order.Date)
	mockOrders.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_CreateOrderUnknownUser(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewOrderService(mockOrders, mockUsers, nil)

	mockUsers.On("GetByUsername", "ghost").
		Return(nil, fmt.Errorf("user ghost: %w", repositories.ErrNotFound)).Once()

	order, err := service.CreateOrder("ghost", nil, 10)
	assert.ErrorIs(t, err, services.ErrInvalidUser)
	assert.Nil(t, order)
	// Nothing was stored.
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertExpectations(t)
}

func TestOrderService_CreateOrderMissingUsername(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewOrderService(mockOrders, mockUsers, nil)

	order, err := service.CreateOrder("", nil, 0)
	assert.ErrorIs(t, err, services.ErrInvalidUser)
	assert.Nil(t, order)
	mockUsers.AssertNotCalled(t, "GetByUsername", mock.Anything)
}

func TestOrderService_CreateOrderDefaults(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewOrderService(mockOrders, mockUsers, nil)

	mockUsers.On("GetByUsername", "alice").
		Return(&models.User{Username: "alice"}, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Order).ID = 1
	}).Return(nil).Once()

	// Omitted items and total default to an empty list and zero; a nil
	// publisher is tolerated.
	order, err := service.CreateOrder("alice", nil, 0)
	assert.NoError(t, err)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
	assert.Equal(t, 0.0, order.Total)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_CreateOrderPublishFailureIsNotFatal(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewOrderService(mockOrders, mockUsers, mockPub)

	mockUsers.On("GetByUsername", "alice").
		Return(&models.User{Username: "alice"}, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Order).ID = 1
	}).Return(nil).Once()
	mockPub.On("PublishOrderCreated", mock.Anything).
		Return(fmt.Errorf("broker down")).Once()

	order, err := service.CreateOrder("alice", nil, 50)
	assert.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	mockPub.AssertExpectations(t)
}

func TestOrderService_GetOrdersByUsername(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewOrderService(mockOrders, mockUsers, nil)

	expected := []models.Order{
		{ID: 1, Username: "alice", Status: models.OrderStatusCompleted},
		{ID: 2, Username: "alice", Status: models.OrderStatusCompleted},
	}
	mockOrders.On("GetByUsername", "alice").Return(expected, nil).Once()

	orders, err := service.GetOrdersByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)

	// Unknown users get an empty list from the repository, never an error.
	mockOrders.On("GetByUsername", "ghost").Return([]models.Order{}, nil).Once()
	orders, err = service.GetOrdersByUsername("ghost")
	assert.NoError(t, err)
	assert.Empty(t, orders)
	mockOrders.AssertExpectations(t)
}
