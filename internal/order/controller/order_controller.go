package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mousespa/internal/domain"
	"mousespa/internal/dto"
	apperrors "mousespa/internal/errors"
	"mousespa/internal/pricing"
)

// OrderUseCase is everything the HTTP layer needs from the order service.
type OrderUseCase interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Track(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.Status) error
	Delete(ctx context.Context, id uint) error
	Quote(services []string, quantity int, pickupMethod string) pricing.Summary
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

// Routes mounts the order API under /orders.
func (c *OrderController) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", c.CreateOrder)
	r.Get("/", c.ListOrders)
	r.Post("/quote", c.QuoteOrder)
	r.Get("/track/{id}", c.TrackOrder)
	r.Get("/{id}", c.GetOrder)
	r.Put("/{id}/status", c.UpdateOrderStatus)
	r.Delete("/{id}", c.DeleteOrder)
	return r
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type listResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    []dto.OrderResponse `json:"data"`
	Total   int                 `json:"total"`
}

type validationResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Errors  []apperrors.ValidationDetail `json:"errors,omitempty"`
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: "Data tidak valid",
			Errors: []apperrors.ValidationDetail{
				{Field: "body", Message: "request body must be valid JSON"},
			},
		})
		return
	}

	order, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "Order berhasil dibuat",
		Data:    toOrderResponse(*order),
	})
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	orders, err := c.useCase.List(r.Context())
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	data := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, toOrderResponse(o))
	}

	c.writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Message: "Data orders berhasil diambil",
		Data:    data,
		Total:   len(data),
	})
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	c.getOne(w, r, "Order ditemukan")
}

// TrackOrder is the customer-facing lookup; same read, separate path so the
// admin list endpoint can grow auth later without breaking tracking.
func (c *OrderController) TrackOrder(w http.ResponseWriter, r *http.Request) {
	c.getOne(w, r, "Order ditemukan")
}

func (c *OrderController) getOne(w http.ResponseWriter, r *http.Request, okMessage string) {
	logger := c.requestLogger()

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	order, err := c.useCase.Track(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: okMessage,
		Data:    toOrderResponse(*order),
	})
}

func (c *OrderController) QuoteOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: "Data tidak valid",
		})
		return
	}

	summary := c.useCase.Quote(req.Services, req.PadQuantity, req.PickupMethod)

	c.writeJSON(w, http.StatusOK, response{
		Success: true,
		Data: dto.QuoteResponse{
			Services:       summary.Services,
			PadQuantity:    summary.Quantity,
			PickupMethod:   summary.MethodLabel,
			Total:          summary.Total,
			FormattedTotal: summary.FormattedTotal,
		},
	})
}

func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: "Data tidak valid",
		})
		return
	}

	if err := c.useCase.UpdateStatus(r.Context(), id, domain.Status(req.Status)); err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Status berhasil diupdate",
	})
}

func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	if err := c.useCase.Delete(r.Context(), id); err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Order berhasil dihapus",
	})
}

func (c *OrderController) orderID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil || id == 0 {
		logger.Warn("invalid order id in path", zap.String("id", idParam))
		c.writeJSON(w, http.StatusBadRequest, response{
			Message: "ID tidak valid",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *OrderController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		logger.Warn("validation failed", zap.Int("detailCount", len(ve.Details)))
		c.writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: ve.Message,
			Errors:  ve.Details,
		})
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, response{
			Message: "Order tidak ditemukan",
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, response{
			Message: ce.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, response{
		Message: "Terjadi kesalahan pada server",
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toOrderResponse(order domain.Order) dto.OrderResponse {
	status := domain.NormalizeStatus(order.Status)
	return dto.OrderResponse{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		PhoneNumber:   order.PhoneNumber,
		Email:         order.Email,
		Services:      domain.DecodeServices(order.Services).List(),
		PadQuantity:   order.PadQuantity,
		PickupMethod:  order.PickupMethod,
		PickupAddress: order.PickupAddress,
		Notes:         order.Notes,
		Status:        string(status),
		StatusLabel:   status.Label(),
		CreatedAt:     order.CreatedAt,
	}
}
