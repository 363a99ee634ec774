package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/loyaltyrepo"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MockStatusNotifier records published status events.
type MockStatusNotifier struct {
	mock.Mock
}

func (m *MockStatusNotifier) NotifyStatusChanged(ctx context.Context, event order.StatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type lifecycleFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f lifecycleFactory) Create() commands.OrderLifecycleUoW {
	return f.factory.Create()
}

type loyaltyFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f loyaltyFactory) Create() commands.LoyaltyUoW {
	return f.factory.Create()
}

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	notifier  *MockStatusNotifier
	factory   *postgres_adapter.GormUnitOfWorkFactory
	logger    *slog.Logger
	placedAt  time.Time
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.logger = slog.New(slog.DiscardHandler)
	suite.placedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

// SetupTest cleans the database and creates a fresh factory before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.notifier = new(MockStatusNotifier)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.notifier, suite.logger, nil)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) lifecycle() commands.OrderLifecycle {
	return commands.NewOrderLifecycle(
		lifecycleFactory{suite.factory},
		services.NewLoyaltyAwarder(services.DefaultLoyaltyPolicy()),
		func() time.Time { return suite.placedAt.Add(time.Hour) },
		suite.logger,
		nil,
	)
}

// storeAt persists a fresh order moved to status without publishing anything.
func (suite *UnitOfWorkIntegrationTestSuite) storeAt(restaurantID, driverID kernel.UUID, status order.Status) *order.Order {
	ctx := context.Background()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.db, nil, suite.logger, nil).Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := pgtest.NewOrder(suite.T(), kernel.NewUUID(), restaurantID, suite.placedAt)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	if status != order.Pending {
		pgtest.MoveTo(suite.T(), o, driverID, status)
		suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	}

	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesStatusEventsAfterCommit() {
	ctx := context.Background()
	suite.notifier.On("NotifyStatusChanged", mock.Anything, mock.MatchedBy(func(e order.StatusChanged) bool {
		return e.Status == order.Pending
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID(), suite.placedAt)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.notifier.AssertNotCalled(suite.T(), "NotifyStatusChanged", mock.Anything, mock.Anything)
	suite.Require().NoError(uow.Commit(ctx))

	suite.notifier.AssertExpectations(suite.T())
	suite.Empty(o.PullEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_NotificationFailureDoesNotFailCommit() {
	ctx := context.Background()
	suite.notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID(), suite.placedAt)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID(), suite.placedAt)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.notifier.AssertNotCalled(suite.T(), "NotifyStatusChanged", mock.Anything, mock.Anything)
	suite.Empty(o.PullEvents())
	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()

	suite.Run("should reject commit without begin", func() {
		suite.Error(suite.factory.Create().Commit(ctx))
	})

	suite.Run("should reject rollback without begin", func() {
		suite.Error(suite.factory.Create().Rollback(ctx))
	})

	suite.Run("should treat a second begin as a no-op", func() {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		suite.Require().NoError(uow.Begin(ctx))
		suite.NoError(uow.Rollback(ctx))
	})
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSideEffect_FailureKeepsTransactionUsable() {
	ctx := context.Background()
	suite.notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Return(nil)
	seeded := pgtest.SeedRestaurant(suite.T(), suite.db, 0)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := pgtest.NewOrder(suite.T(), kernel.NewUUID(), seeded.ID(), suite.placedAt)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	err := uow.SideEffect(ctx, "unknown_restaurant", func(ctx context.Context) error {
		if incErr := uow.RestaurantCapacityRepository().IncrementOrders(ctx, seeded.ID()); incErr != nil {
			return incErr
		}
		return uow.RestaurantCapacityRepository().IncrementOrders(ctx, kernel.NewUUID())
	})
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.SideEffect(ctx, "increment", func(ctx context.Context) error {
		return uow.RestaurantCapacityRepository().IncrementOrders(ctx, seeded.ID())
	}))
	suite.Require().NoError(uow.Commit(ctx))

	r, err := restaurantrepo.NewGormCatalog(suite.db).GetRestaurant(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(1, r.CurrentOrdersCount())
	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSideEffect_WithoutTransaction_ReturnsError() {
	err := suite.factory.Create().SideEffect(context.Background(), "none", func(context.Context) error { return nil })

	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDelivered_ReleasesCapacityAwardsCoinsAndPublishes() {
	ctx := context.Background()
	suite.notifier.On("NotifyStatusChanged", mock.Anything, mock.MatchedBy(func(e order.StatusChanged) bool {
		return e.Status == order.Delivered
	})).Return(nil).Once()
	seeded := pgtest.SeedRestaurant(suite.T(), suite.db, 3)
	suite.Require().NoError(restaurantrepo.NewGormCapacityRepository(suite.db).IncrementOrders(ctx, seeded.ID()))
	driverID := kernel.NewUUID()
	o := suite.storeAt(seeded.ID(), driverID, order.EnRoute)

	handler := commands.NewTransitionOrderCommandHandler(suite.lifecycle())
	cmd, err := commands.NewTransitionOrderCommand(o.ID(), pgtest.Actor(suite.T(), driverID, order.RoleDriver), order.Delivered, "")
	suite.Require().NoError(err)

	delivered, err := handler.Handle(ctx, cmd)

	suite.Require().NoError(err)
	suite.Equal(order.Delivered, delivered.Status())
	suite.notifier.AssertExpectations(suite.T())

	r, err := restaurantrepo.NewGormCatalog(suite.db).GetRestaurant(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Zero(r.CurrentOrdersCount())

	awarded, err := loyaltyrepo.NewGormLoyaltyRepository(suite.db).HasOrderTransaction(ctx, o.ID(), loyalty.Earned)
	suite.Require().NoError(err)
	suite.True(awarded)
	account, err := loyaltyrepo.NewGormLoyaltyRepository(suite.db).GetAccount(ctx, o.CustomerID())
	suite.Require().NoError(err)
	suite.Positive(account.Balance())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentClaims_ExactlyOneDriverWins() {
	ctx := context.Background()
	suite.notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Return(nil)
	o := suite.storeAt(kernel.NewUUID(), kernel.NewUUID(), order.Ready)
	handler := commands.NewClaimOrderCommandHandler(suite.lifecycle())

	var winners, losers atomic.Int32
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			cmd, err := commands.NewDriverOrderCommand(o.ID(), pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleDriver), "")
			if err != nil {
				return err
			}
			_, err = handler.Handle(ctx, cmd)
			switch {
			case err == nil:
				winners.Add(1)
			case errors.Is(err, errs.ErrConflict):
				losers.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	suite.Equal(int32(1), winners.Load())
	suite.Equal(int32(7), losers.Load())

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.Status())
	suite.Equal(2, stored.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAwardRetries_CreditOnce() {
	ctx := context.Background()
	o := suite.storeAt(kernel.NewUUID(), kernel.NewUUID(), order.Delivered)
	handler := commands.NewAwardLoyaltyCommandHandler(
		loyaltyFactory{suite.factory},
		services.NewLoyaltyAwarder(services.DefaultLoyaltyPolicy()),
		func() time.Time { return suite.placedAt.Add(2 * time.Hour) },
		nil,
	)
	cmd, err := commands.NewAwardLoyaltyCommand(pgtest.Actor(suite.T(), kernel.NewUUID(), order.RoleAdmin), o.ID())
	suite.Require().NoError(err)

	var awardedCoins, awarded, already atomic.Int32
	var g errgroup.Group
	for range 6 {
		g.Go(func() error {
			result, handleErr := handler.Handle(ctx, cmd)
			if handleErr != nil {
				return handleErr
			}
			switch result.Outcome {
			case services.AwardOutcomeAwarded:
				awarded.Add(1)
				awardedCoins.Store(int32(result.Coins))
			case services.AwardOutcomeAlreadyAwarded:
				already.Add(1)
			}
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	suite.Equal(int32(1), awarded.Load())
	suite.Equal(int32(5), already.Load())

	account, err := loyaltyrepo.NewGormLoyaltyRepository(suite.db).GetAccount(ctx, o.CustomerID())
	suite.Require().NoError(err)
	suite.Equal(int(awardedCoins.Load()), account.Balance())
	suite.Equal(int(awardedCoins.Load()), account.TotalEarned())

	var entries int64
	suite.Require().NoError(suite.db.Table("loyalty_transactions").
		Where("order_id = ? AND type = ?", o.ID().Bytes(), string(loyalty.Earned)).
		Count(&entries).Error)
	suite.Equal(int64(1), entries)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
