package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/driver"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasActiveOrderForDriver(
	ctx context.Context,
	driverID kernel.UUID,
	except *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, driverID, except)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountDeliveredForCustomer(ctx context.Context, customerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPromoRepository struct{ mock.Mock }

func (m *MockPromoRepository) Add(ctx context.Context, code *promo.PromoCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockPromoRepository) SetActive(ctx context.Context, code *promo.PromoCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockPromoRepository) GetByCode(ctx context.Context, code string) (*promo.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.PromoCode), args.Error(1)
}

func (m *MockPromoRepository) UserUsage(ctx context.Context, promoID, userID kernel.UUID) (int, error) {
	args := m.Called(ctx, promoID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockPromoRepository) IncrementUsage(ctx context.Context, promoID, userID kernel.UUID, at time.Time) error {
	args := m.Called(ctx, promoID, userID, at)
	return args.Error(0)
}

type MockLoyaltyRepository struct{ mock.Mock }

func (m *MockLoyaltyRepository) EnsureAccount(ctx context.Context, userID kernel.UUID, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockLoyaltyRepository) GetAccountForUpdate(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loyalty.Account), args.Error(1)
}

func (m *MockLoyaltyRepository) GetAccount(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loyalty.Account), args.Error(1)
}

func (m *MockLoyaltyRepository) SaveAccount(ctx context.Context, account *loyalty.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLoyaltyRepository) AppendTransaction(ctx context.Context, tx *loyalty.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLoyaltyRepository) HasOrderTransaction(
	ctx context.Context,
	orderID kernel.UUID,
	txType loyalty.TransactionType,
) (bool, error) {
	args := m.Called(ctx, orderID, txType)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoyaltyRepository) RecentTransactions(
	ctx context.Context,
	userID kernel.UUID,
	limit int,
) ([]*loyalty.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]*loyalty.Transaction), args.Error(1)
}

func (m *MockLoyaltyRepository) ListExpiredUnprocessed(
	ctx context.Context,
	at time.Time,
	limit int,
) ([]*loyalty.Transaction, error) {
	args := m.Called(ctx, at, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loyalty.Transaction), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockCapacityRepository struct{ mock.Mock }

func (m *MockCapacityRepository) IncrementOrders(ctx context.Context, restaurantID kernel.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockCapacityRepository) DecrementOrders(ctx context.Context, restaurantID kernel.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockCapacityRepository) ReconcileOrderCounts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockCatalog) GetMenuItems(
	ctx context.Context,
	restaurantID kernel.UUID,
	ids []kernel.UUID,
) ([]restaurant.MenuItem, error) {
	args := m.Called(ctx, restaurantID, ids)
	return args.Get(0).([]restaurant.MenuItem), args.Error(1)
}

// MockUoW satisfies every narrow unit of work. SideEffect records the call and,
// unless configured to fail, runs the function like a savepoint would.
type MockUoW struct {
	mock.Mock

	orders   *MockOrderRepository
	promos   *MockPromoRepository
	loyalty  *MockLoyaltyRepository
	drivers  *MockDriverRepository
	capacity *MockCapacityRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:   new(MockOrderRepository),
		promos:   new(MockPromoRepository),
		loyalty:  new(MockLoyaltyRepository),
		drivers:  new(MockDriverRepository),
		capacity: new(MockCapacityRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SideEffect(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, name)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUoW) PromoRepository() ports.PromoRepository { return m.promos }
func (m *MockUoW) LoyaltyRepository() ports.LoyaltyRepository { return m.loyalty }
func (m *MockUoW) DriverRepository() ports.DriverRepository { return m.drivers }
func (m *MockUoW) RestaurantCapacityRepository() ports.RestaurantCapacityRepository { return m.capacity }

// assertAll checks the expectations of the unit of work and its repositories.
func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.promos.AssertExpectations(t)
	m.loyalty.AssertExpectations(t)
	m.drivers.AssertExpectations(t)
	m.capacity.AssertExpectations(t)
}

type uowFactory struct{ uow *MockUoW }

type (
	createOrderFactory struct{ uowFactory }
	lifecycleFactory   struct{ uowFactory }
	orderFactory       struct{ uowFactory }
	driverFactory      struct{ uowFactory }
	promoFactory       struct{ uowFactory }
	loyaltyFactory     struct{ uowFactory }
	capacityFactory    struct{ uowFactory }
)

func (f createOrderFactory) Create() commands.CreateOrderUoW { return f.uow }
func (f lifecycleFactory) Create() commands.OrderLifecycleUoW { return f.uow }
func (f orderFactory) Create() commands.OrderUoW { return f.uow }
func (f driverFactory) Create() commands.DriverUoW { return f.uow }
func (f promoFactory) Create() commands.PromoUoW { return f.uow }
func (f loyaltyFactory) Create() commands.LoyaltyUoW { return f.uow }
func (f capacityFactory) Create() commands.CapacityUoW { return f.uow }

type actors struct {
	customer   order.Actor
	restaurant order.Actor
	driver     order.Actor
	admin      order.Actor
}

func newActors(t *testing.T) actors {
	t.Helper()

	mk := func(role order.Role) order.Actor {
		a, err := order.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)
		return a
	}

	return actors{
		customer:   mk(order.RoleCustomer),
		restaurant: mk(order.RoleRestaurant),
		driver:     mk(order.RoleDriver),
		admin:      mk(order.RoleAdmin),
	}
}

func testAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()

	loc, err := kernel.NewLocation(12.9352, 77.6245)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("1 MG Road", "Bengaluru", "560001", loc, "ring twice")
	require.NoError(t, err)
	return address
}

// newTestOrder creates a Pending order of the actors' customer and restaurant
// with a 300.00 total.
func newTestOrder(t *testing.T, a actors) *order.Order {
	t.Helper()

	restaurantLoc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Thali", kernel.MoneyFromFloat(250), 1, nil, "")
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:                 kernel.NewUUID(),
		CustomerID:         a.customer.ID(),
		RestaurantID:       a.restaurant.ID(),
		RestaurantLocation: restaurantLoc,
		Items:              []order.LineItem{item},
		Pricing: order.PricingBreakdown{
			Subtotal:    kernel.MoneyFromFloat(250),
			DeliveryFee: kernel.MoneyFromFloat(20.87),
			Taxes:       kernel.MoneyFromFloat(24.13),
			PlatformFee: kernel.MoneyFromFloat(5),
			Total:       kernel.MoneyFromFloat(300),
			Commission:  order.Commission{Rate: decimal.NewFromInt(10), Amount: kernel.MoneyFromFloat(25)},
		},
		DeliveryAddress:       testAddress(t),
		ContactPhone:          "+919876543210",
		PaymentMethod:         order.PaymentCard,
		EstimatedDeliveryTime: now.Add(40 * time.Minute),
		PlacedAt:              now.Add(-time.Hour),
	})
	require.NoError(t, err)
	// Stored, as the repository leaves it after the insert.
	o.MarkPersisted(1)
	o.PullEvents()
	return o
}

// moveTo drives an order along the happy path up to the target status.
func moveTo(t *testing.T, a actors, o *order.Order, target order.Status) {
	t.Helper()

	at := now.Add(-time.Hour)
	path := []struct {
		actor order.Actor
		to    order.Status
	}{
		{a.restaurant, order.Confirmed},
		{a.restaurant, order.Preparing},
		{a.restaurant, order.Ready},
		{a.driver, order.Assigned},
		{a.driver, order.Picked},
		{a.driver, order.EnRoute},
		{a.driver, order.Delivered},
	}
	for _, step := range path {
		if o.Status() == target {
			break
		}
		at = at.Add(time.Minute)
		require.NoError(t, o.Transition(step.actor, step.to, "", at))
	}
	require.Equal(t, target, o.Status())
	o.PullEvents()
}

func driverActor(t *testing.T, id kernel.UUID) order.Actor {
	t.Helper()
	a, err := order.NewActor(id, order.RoleDriver)
	require.NoError(t, err)
	return a
}
