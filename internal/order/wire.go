package order

import (
	"database/sql"

	"go.uber.org/zap"

	"mousespa/internal/order/controller"
	"mousespa/internal/order/repository"
	"mousespa/internal/order/service"
)

// NewModule wires the order feature: repository, service, HTTP controller.
func NewModule(db *sql.DB, logger *zap.Logger) (*controller.OrderController, *service.OrderService) {
	repo := repository.NewMySQLOrderRepository(db)
	svc := service.NewOrderService(repo, logger)
	ctrl := controller.NewOrderController(svc, logger)
	return ctrl, svc
}
