package mysql

import (
	"database/sql"
	"fmt"
)

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	customer_name VARCHAR(100) NOT NULL,
	phone_number VARCHAR(30) NOT NULL,
	email VARCHAR(150) NOT NULL DEFAULT '',
	services TEXT NOT NULL,
	pad_quantity INT NOT NULL DEFAULT 1,
	pickup_method VARCHAR(30) NOT NULL,
	pickup_address TEXT,
	notes TEXT,
	status VARCHAR(30) NOT NULL DEFAULT 'pending',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	INDEX idx_status (status),
	INDEX idx_created (created_at)
)`

// EnsureSchema creates the orders table when it does not exist yet.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(createOrdersTable); err != nil {
		return fmt.Errorf("creating orders table: %w", err)
	}
	return nil
}
