package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mousespa/internal/domain"
	"mousespa/internal/errors"
	"mousespa/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func sampleOrder() *domain.Order {
	return &domain.Order{
		CustomerName:  "Budi Santoso",
		PhoneNumber:   "08123456789",
		Email:         "budi@gmail.com",
		Services:      `["Deep Cleaning","Stain Removal"]`,
		PadQuantity:   2,
		PickupMethod:  domain.PickupMethodPickup,
		PickupAddress: "Jl. Sudirman No. 123, Jakarta Selatan",
		Notes:         "Mousepad gaming ukuran XL",
		Status:        domain.StatusPending,
	}
}

func TestOrderRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	id, err := repo.Insert(context.Background(), sampleOrder())
	require.NoError(t, err)
	require.NotZero(t, id)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	assert.Equal(t, "Budi Santoso", order.CustomerName)
	assert.Equal(t, "08123456789", order.PhoneNumber)
	assert.Equal(t, `["Deep Cleaning","Stain Removal"]`, order.Services)
	assert.Equal(t, 2, order.PadQuantity)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "Jl. Sudirman No. 123, Jakarta Selatan", order.PickupAddress)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), 9999)
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestOrderRepository_FindAll_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	first := sampleOrder()
	_, err := repo.Insert(context.Background(), first)
	require.NoError(t, err)

	second := sampleOrder()
	second.CustomerName = "Siti Rahayu"
	// Force distinct creation times so the ordering is deterministic.
	_, err = db.Exec("UPDATE orders SET created_at = created_at - INTERVAL 1 HOUR")
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), second)
	require.NoError(t, err)

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Siti Rahayu", orders[0].CustomerName)
	assert.Equal(t, "Budi Santoso", orders[1].CustomerName)
}

func TestOrderRepository_FindAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	id, err := repo.Insert(context.Background(), sampleOrder())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), id, domain.StatusInProgress)
	require.NoError(t, err)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, order.Status)
}

func TestOrderRepository_UpdateStatus_SameValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	id, err := repo.Insert(context.Background(), sampleOrder())
	require.NoError(t, err)

	// Re-applying the current status is not an error.
	err = repo.UpdateStatus(context.Background(), id, domain.StatusPending)
	assert.NoError(t, err)
}

func TestOrderRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	id, err := repo.Insert(context.Background(), sampleOrder())
	require.NoError(t, err)

	err = repo.Delete(context.Background(), id)
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), id)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.Delete(context.Background(), 9999)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
