package postgres

import (
	"fmt"
	"strings"

	"foodorder/internal/adapters/out/postgres/driverrepo"
	"foodorder/internal/adapters/out/postgres/loyaltyrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/promorepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&promorepo.PromoCodeDTO{},
		&promorepo.PromoUsageDTO{},
		&loyaltyrepo.AccountDTO{},
		&loyaltyrepo.TransactionDTO{},
	}
}

// Migrate creates the schema with AutoMigrate and adds the partial unique
// indexes GORM tags cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	statements := []string{
		fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON orders (driver_id) WHERE status IN (%s)",
			orderrepo.ActiveDriverIndex, quoteStatuses(order.DriverActiveStatuses()),
		),
		fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON loyalty_transactions (order_id, type) WHERE type IN ('%s', '%s')",
			loyaltyrepo.OrderEntryIndex, loyalty.Earned, loyalty.Expired,
		),
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

func quoteStatuses(statuses []order.Status) string {
	quoted := make([]string, 0, len(statuses))
	for _, s := range statuses {
		quoted = append(quoted, "'"+s.String()+"'")
	}
	return strings.Join(quoted, ", ")
}
