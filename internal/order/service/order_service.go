package service

import (
	"context"

	"go.uber.org/zap"

	"mousespa/internal/domain"
	"mousespa/internal/dto"
	apperrors "mousespa/internal/errors"
	"mousespa/internal/pricing"
	"mousespa/internal/validation"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.Status) error
	Delete(ctx context.Context, id uint) error
}

type OrderService struct {
	repo   OrderRepository
	logger *zap.Logger
}

func NewOrderService(repo OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the intake form, normalizes it, and persists a new
// pending order. Validation failures never touch the database.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	form := validation.OrderForm{
		CustomerName:  req.CustomerName,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Services:      req.Services,
		PadQuantity:   req.PadQuantity,
		PickupMethod:  req.PickupMethod,
		PickupAddress: req.PickupAddress,
	}
	if err := validation.ValidateOrderForm(form); err != nil {
		return nil, err
	}

	services, err := domain.EncodeServices(req.Services)
	if err != nil {
		return nil, apperrors.NewInternalError("encoding services", err)
	}

	// Address only applies to pickup orders; it is cleared otherwise.
	address := req.PickupAddress
	if req.PickupMethod != domain.PickupMethodPickup {
		address = ""
	}

	order := &domain.Order{
		CustomerName:  req.CustomerName,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Services:      services,
		PadQuantity:   pricing.ClampQuantity(req.PadQuantity),
		PickupMethod:  req.PickupMethod,
		PickupAddress: address,
		Notes:         req.Notes,
		Status:        domain.StatusPending,
	}

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.logger.Info("order created",
		zap.Uint("orderId", id),
		zap.Int("padQuantity", order.PadQuantity),
		zap.String("pickupMethod", order.PickupMethod),
	)

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// The row exists; fall back to what was written.
		return order, nil
	}
	return created, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// Track fetches one order for the customer-facing progress view.
func (s *OrderService) Track(ctx context.Context, id uint) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus sets an order to any of the five statuses. This is an
// administrative override: backward transitions are allowed.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status domain.Status) error {
	if !domain.ValidStatus(status) {
		return apperrors.NewValidationError("Status tidak valid", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status harus salah satu dari: pending, picked_up, in_progress, done, delivered",
		})
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("order status updated", zap.Uint("orderId", id), zap.String("status", string(status)))
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.Uint("orderId", id))
	return nil
}

// Quote derives the price summary for the current form selection. Pure
// computation, nothing is persisted.
func (s *OrderService) Quote(services []string, quantity int, pickupMethod string) pricing.Summary {
	return pricing.BuildSummary(services, quantity, pickupMethod)
}
