package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/loyaltyrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// ReadModelIntegrationTestSuite runs the SQL read side against orders and
// ledger entries written by the postgres repositories.
type ReadModelIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
}

func (suite *ReadModelIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ReadModelIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.orders = orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
}

func (suite *ReadModelIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReadModelIntegrationTestSuite) store(customerID, restaurantID, driverID kernel.UUID, status order.Status, minute int) *order.Order {
	o := pgtest.NewOrder(suite.T(), customerID, restaurantID, now.Add(time.Duration(minute)*time.Minute))
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	if status != order.Pending {
		pgtest.MoveTo(suite.T(), o, driverID, status)
		suite.Require().NoError(suite.orders.Update(context.Background(), o))
	}
	return o
}

func (suite *ReadModelIntegrationTestSuite) getOrder(id kernel.UUID, reader order.Actor) (*queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(id, reader)
	suite.Require().NoError(err)
	return queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
}

func (suite *ReadModelIntegrationTestSuite) activeOrders(reader order.Actor) []queries.GetActiveOrdersQueryResponse {
	query, err := queries.NewGetActiveOrdersQuery(reader)
	suite.Require().NoError(err)
	orders, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return orders
}

func (suite *ReadModelIntegrationTestSuite) TestGetOrder_ReturnsItemsAndHistory() {
	customerID, restaurantID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	o := suite.store(customerID, restaurantID, driverID, order.Picked, 0)

	resp, err := suite.getOrder(o.ID(), pgtest.Actor(suite.T(), customerID, order.RoleCustomer))

	suite.Require().NoError(err)
	suite.Equal(order.Picked, resp.Status)
	suite.Require().NotNil(resp.DriverID)
	suite.True(resp.DriverID.IsEqual(driverID))
	suite.Equal("300.00", resp.Pricing.Total.String())
	suite.Equal("250.00", resp.Pricing.Subtotal.String())
	suite.Equal("Bengaluru", resp.DeliveryAddress.City)
	suite.Equal("+919876543210", resp.ContactPhone)

	suite.Require().Len(resp.Items, 1)
	suite.Equal("Paneer Tikka", resp.Items[0].Name)
	suite.Equal("no onions", resp.Items[0].Instructions)
	suite.Require().Len(resp.Items[0].Customizations, 1)
	suite.Equal("30.00", resp.Items[0].Customizations[0].PriceDelta.String())

	statuses := make([]order.Status, 0, len(resp.History))
	for _, entry := range resp.History {
		statuses = append(statuses, entry.Status)
	}
	suite.Equal([]order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Assigned, order.Picked,
	}, statuses)
	suite.Equal(order.RoleDriver, resp.History[len(resp.History)-1].ActorRole)
	suite.Empty(resp.AllowedTransitions, "a customer has no move once the food is picked up")

	resp, err = suite.getOrder(o.ID(), pgtest.Actor(suite.T(), driverID, order.RoleDriver))
	suite.Require().NoError(err)
	suite.Equal([]order.Status{order.EnRoute}, resp.AllowedTransitions)
}

func (suite *ReadModelIntegrationTestSuite) TestGetOrder_Visibility() {
	customerID, restaurantID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	assigned := suite.store(customerID, restaurantID, driverID, order.Assigned, 0)
	ready := suite.store(customerID, restaurantID, driverID, order.Ready, 1)

	allowed := map[string]order.Actor{
		"customer":        pgtest.Actor(suite.T(), customerID, order.RoleCustomer),
		"restaurant":      pgtest.Actor(suite.T(), restaurantID, order.RoleRestaurant),
		"assigned driver": pgtest.Actor(suite.T(), driverID, order.RoleDriver),
		"admin":           pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleAdmin),
	}
	for name, reader := range allowed {
		suite.Run("should let the "+name+" read the order", func() {
			_, err := suite.getOrder(assigned.ID(), reader)
			suite.NoError(err)
		})
	}

	suite.Run("should forbid unrelated actors", func() {
		for _, reader := range []order.Actor{
			pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleCustomer),
			pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleRestaurant),
			pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleDriver),
		} {
			_, err := suite.getOrder(assigned.ID(), reader)
			suite.ErrorIs(err, errs.ErrForbidden)
		}
	})

	suite.Run("should show an unclaimed ready order to any driver", func() {
		resp, err := suite.getOrder(ready.ID(), pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleDriver))
		suite.Require().NoError(err)
		suite.Nil(resp.DriverID)
		suite.Equal([]order.Status{order.Assigned}, resp.AllowedTransitions)
	})

	suite.Run("should report an unknown order", func() {
		_, err := suite.getOrder(kernel.NewUUID(), allowed["admin"])
		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *ReadModelIntegrationTestSuite) TestGetActiveOrders_ScopesByRole() {
	customerID, restaurantID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	otherCustomer, otherRestaurant, otherDriver := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	pending := suite.store(customerID, restaurantID, driverID, order.Pending, 0)
	enRoute := suite.store(customerID, restaurantID, driverID, order.EnRoute, 1)
	suite.store(customerID, restaurantID, driverID, order.Delivered, 2)
	pool := suite.store(otherCustomer, otherRestaurant, otherDriver, order.Ready, 3)
	foreign := suite.store(otherCustomer, otherRestaurant, otherDriver, order.Assigned, 4)

	ids := func(orders []queries.GetActiveOrdersQueryResponse) []kernel.UUID {
		out := make([]kernel.UUID, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	suite.Run("should list the customer's open orders oldest first", func() {
		orders := suite.activeOrders(pgtest.Actor(suite.T(), customerID, order.RoleCustomer))
		suite.Equal([]kernel.UUID{pending.ID(), enRoute.ID()}, ids(orders))
		suite.Equal("300.00", orders[0].Total.String())
		suite.Equal("Bengaluru", orders[0].DeliveryCity)
	})

	suite.Run("should list the restaurant's open orders", func() {
		orders := suite.activeOrders(pgtest.Actor(suite.T(), otherRestaurant, order.RoleRestaurant))
		suite.Equal([]kernel.UUID{pool.ID(), foreign.ID()}, ids(orders))
	})

	suite.Run("should list the driver's deliveries and the ready pool", func() {
		orders := suite.activeOrders(pgtest.Actor(suite.T(), driverID, order.RoleDriver))
		suite.Equal([]kernel.UUID{enRoute.ID(), pool.ID()}, ids(orders))
		suite.Require().NotNil(orders[0].DriverID)
		suite.Nil(orders[1].DriverID)
	})

	suite.Run("should list every open order for admins", func() {
		orders := suite.activeOrders(pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleAdmin))
		suite.Len(orders, 4)
	})

	suite.Run("should return an empty list for a stranger", func() {
		orders := suite.activeOrders(pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleCustomer))
		suite.NotNil(orders)
		suite.Empty(orders)
	})
}

func (suite *ReadModelIntegrationTestSuite) TestGetLoyaltySummary() {
	ctx := context.Background()
	handler := queries.NewGetLoyaltySummaryQueryHandler(suite.db)

	suite.Run("should report an empty bronze account for a new user", func() {
		query, err := queries.NewGetLoyaltySummaryQuery(kernel.NewUUID())
		suite.Require().NoError(err)

		summary, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Zero(summary.Balance)
		suite.Equal(loyalty.Bronze, summary.Tier)
		suite.Equal(loyalty.Silver, summary.NextTier)
		suite.Equal(500, summary.CoinsToNextTier)
		suite.Empty(summary.RecentTransactions)
	})

	suite.Run("should derive the tier and list recent entries newest first", func() {
		ledger := loyaltyrepo.NewGormLoyaltyRepository(suite.db)
		userID := kernel.NewUUID()
		suite.Require().NoError(ledger.EnsureAccount(ctx, userID, now))
		account, err := ledger.GetAccountForUpdate(ctx, userID)
		suite.Require().NoError(err)

		balance := 0
		for i := range 12 {
			orderID := kernel.NewUUID()
			balance += 50
			suite.Require().NoError(account.Credit(50, now))
			tx, txErr := loyalty.NewTransaction(loyalty.TransactionParams{
				ID:           kernel.NewUUID(),
				UserID:       userID,
				OrderID:      &orderID,
				Type:         loyalty.Earned,
				Amount:       50,
				BalanceAfter: balance,
				CreatedAt:    now.Add(time.Duration(i) * time.Minute),
			})
			suite.Require().NoError(txErr)
			suite.Require().NoError(ledger.AppendTransaction(ctx, tx))
		}
		suite.Require().NoError(ledger.SaveAccount(ctx, account))

		query, err := queries.NewGetLoyaltySummaryQuery(userID)
		suite.Require().NoError(err)
		summary, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal(600, summary.Balance)
		suite.Equal(600, summary.TotalEarned)
		suite.Equal(loyalty.Silver, summary.Tier)
		suite.Equal(loyalty.Gold, summary.NextTier)
		suite.Require().Len(summary.RecentTransactions, queries.RecentTransactionsLimit)
		suite.Equal(600, summary.RecentTransactions[0].BalanceAfter)
		suite.Equal(150, summary.RecentTransactions[queries.RecentTransactionsLimit-1].BalanceAfter)
	})
}

func TestReadModelIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelIntegrationTestSuite))
}
