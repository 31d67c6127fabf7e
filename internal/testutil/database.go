package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Tests are skipped when
// a MySQL instance with a 'mousespa_test' database is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/mousespa_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM orders"); err != nil {
		t.Logf("failed to clean orders table: %v", err)
	}

	db.Close()
}

// SetupTestTables creates the orders table used by the repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
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

	if _, err := db.Exec(createOrdersTable); err != nil {
		t.Logf("failed to create orders table: %v", err)
	}
}
