package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mousespa/internal/domain"
	"mousespa/internal/dto"
	apperrors "mousespa/internal/errors"
)

type mockOrderRepository struct {
	InsertFunc       func(ctx context.Context, order *domain.Order) (uint, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Order, error)
	FindAllFunc      func(ctx context.Context) ([]domain.Order, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status domain.Status) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockOrderRepository) Insert(ctx context.Context, order *domain.Order) (uint, error) {
	return m.InsertFunc(ctx, order)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func validRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerName: "Budi Santoso",
		PhoneNumber:  "08123456789",
		Email:        "budi@gmail.com",
		Services:     []string{"Deep Cleaning"},
		PadQuantity:  2,
		PickupMethod: domain.PickupMethodSelfDeliver,
	}
}

func TestCreate_Success(t *testing.T) {
	var inserted *domain.Order
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.Order) (uint, error) {
			inserted = order
			return 7, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			assert.Equal(t, uint(7), id)
			copied := *inserted
			copied.ID = id
			return &copied, nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	order, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(7), order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, `["Deep Cleaning"]`, order.Services)
	assert.Equal(t, 2, order.PadQuantity)
}

func TestCreate_ValidationFailureSkipsRepository(t *testing.T) {
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.Order) (uint, error) {
			t.Fatal("Insert must not be called for an invalid form")
			return 0, nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Details)
}

func TestCreate_ClampsQuantity(t *testing.T) {
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.Order) (uint, error) {
			assert.Equal(t, 20, order.PadQuantity)
			return 1, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{ID: id, PadQuantity: 20}, nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	req := validRequest()
	req.PadQuantity = 99

	order, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 20, order.PadQuantity)
}

func TestCreate_ClearsAddressForSelfDeliver(t *testing.T) {
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.Order) (uint, error) {
			assert.Empty(t, order.PickupAddress)
			return 1, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{ID: id}, nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	req := validRequest()
	req.PickupAddress = "Jl. Sudirman No. 1"

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order *domain.Order) (uint, error) {
			return 0, errors.New("connection lost")
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), validRequest())
	assert.Error(t, err)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			t.Fatal("FindByID must not be called for an invalid status")
			return nil, nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 1, "shipped")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id 9 not found")
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 9, domain.StatusDone)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestUpdateStatus_BackwardTransitionAllowed(t *testing.T) {
	var updatedTo domain.Status
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{ID: id, Status: domain.StatusDelivered}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uint, status domain.Status) error {
			updatedTo = status
			return nil
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 3, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, updatedTo)
}

func TestDelete_PropagatesNotFound(t *testing.T) {
	repo := &mockOrderRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return apperrors.NewNotFoundError("order with id 5 not found")
		},
	}
	svc := NewOrderService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), 5)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestQuote(t *testing.T) {
	svc := NewOrderService(&mockOrderRepository{}, zap.NewNop())

	summary := svc.Quote([]string{"Deep Cleaning"}, 2, domain.PickupMethodSelfDeliver)
	assert.Equal(t, 40000, summary.Total)
	assert.Equal(t, "Antar Sendiri", summary.MethodLabel)
}
