package repository

import (
	"context"
	"database/sql"
	"fmt"

	"mousespa/internal/domain"
	"mousespa/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, customer_name, phone_number, email, services,
	pad_quantity, pickup_method, pickup_address, notes, status,
	created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var order domain.Order
	var address, notes sql.NullString
	err := row.Scan(
		&order.ID, &order.CustomerName, &order.PhoneNumber, &order.Email,
		&order.Services, &order.PadQuantity, &order.PickupMethod,
		&address, &notes, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.PickupAddress = address.String
	order.Notes = notes.String
	return &order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, order *domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (customer_name, phone_number, email, services,
			pad_quantity, pickup_method, pickup_address, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.CustomerName, order.PhoneNumber, order.Email, order.Services,
		order.PadQuantity, order.PickupMethod, order.PickupAddress,
		order.Notes, order.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

// FindAll returns every order, newest first.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`

	// MySQL reports zero affected rows when the status is unchanged, so a
	// missing row cannot be told apart here; callers check existence first.
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM orders WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
