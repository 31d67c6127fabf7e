package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"mousespa/internal/config"
	"mousespa/internal/domain"
	"mousespa/internal/infrastructure/logger"
	"mousespa/internal/infrastructure/mysql"
	"mousespa/internal/order/repository"
)

type sampleOrder struct {
	customerName  string
	phoneNumber   string
	email         string
	services      []string
	padQuantity   int
	pickupMethod  string
	pickupAddress string
	notes         string
	status        domain.Status
}

var sampleOrders = []sampleOrder{
	{
		customerName:  "Budi Santoso",
		phoneNumber:   "081234567890",
		email:         "budi.santoso@gmail.com",
		services:      []string{"Deep Cleaning", "Premium Care"},
		padQuantity:   2,
		pickupMethod:  domain.PickupMethodPickup,
		pickupAddress: "Jl. Sudirman No. 123, Jakarta Selatan",
		notes:         "Mousepad gaming ukuran XL",
		status:        domain.StatusInProgress,
	},
	{
		customerName: "Siti Rahayu",
		phoneNumber:  "087654321098",
		email:        "siti.rahayu@yahoo.com",
		services:     []string{"Deep Cleaning"},
		padQuantity:  1,
		pickupMethod: domain.PickupMethodSelfDeliver,
		status:       domain.StatusPending,
	},
	{
		customerName:  "Ahmad Wijaya",
		phoneNumber:   "082112345678",
		email:         "ahmad.wijaya@outlook.com",
		services:      []string{"Deep Cleaning", "Stain Removal"},
		padQuantity:   3,
		pickupMethod:  domain.PickupMethodPickup,
		pickupAddress: "Jl. Gatot Subroto No. 456, Bandung",
		notes:         "Ada noda kopi yang membandel",
		status:        domain.StatusPickedUp,
	},
	{
		customerName: "Dewi Lestari",
		phoneNumber:  "089876543210",
		email:        "dewi.lestari@gmail.com",
		services:     []string{"Express Cleaning"},
		padQuantity:  1,
		pickupMethod: domain.PickupMethodSelfDeliver,
		notes:        "Butuh cepat, maksimal 2 hari",
		status:       domain.StatusDelivered,
	},
	{
		customerName:  "Reza Pratama",
		phoneNumber:   "081398765432",
		email:         "reza.pratama@hotmail.com",
		services:      []string{"Deep Cleaning", "Stain Removal", "Premium Care"},
		padQuantity:   5,
		pickupMethod:  domain.PickupMethodPickup,
		pickupAddress: "Jl. Thamrin No. 321, Jakarta Pusat",
		notes:         "Untuk warnet, perlu invoice",
		status:        domain.StatusDone,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := mysql.EnsureSchema(db); err != nil {
		zapLogger.Fatal("ensuring schema", zap.Error(err))
	}

	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		zapLogger.Fatal("counting orders", zap.Error(err))
	}
	if count > 0 {
		zapLogger.Info("database already seeded, skipping", zap.Int("orderCount", count))
		return
	}

	repo := repository.NewMySQLOrderRepository(db)

	for _, sample := range sampleOrders {
		services, err := domain.EncodeServices(sample.services)
		if err != nil {
			zapLogger.Fatal("encoding services", zap.Error(err))
		}

		id, err := repo.Insert(ctx, &domain.Order{
			CustomerName:  sample.customerName,
			PhoneNumber:   sample.phoneNumber,
			Email:         sample.email,
			Services:      services,
			PadQuantity:   sample.padQuantity,
			PickupMethod:  sample.pickupMethod,
			PickupAddress: sample.pickupAddress,
			Notes:         sample.notes,
			Status:        domain.StatusPending,
		})
		if err != nil {
			zapLogger.Error("inserting sample order", zap.String("customer", sample.customerName), zap.Error(err))
			continue
		}

		if sample.status != domain.StatusPending {
			if err := repo.UpdateStatus(ctx, id, sample.status); err != nil {
				zapLogger.Error("setting sample status", zap.Uint("orderId", id), zap.Error(err))
			}
		}

		zapLogger.Info("sample order created", zap.Uint("orderId", id), zap.String("customer", sample.customerName))
	}

	zapLogger.Info("seeding finished", zap.Int("orderCount", len(sampleOrders)))
}
