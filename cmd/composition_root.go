package cmd

import (
	"errors"
	"log/slog"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/adapters/out/rediscache"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	notifier   *kafka.StatusNotifier
	redis      redis.UniversalClient
	catalog    ports.Catalog
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      commands.Clock
}

// NewCompositionRoot wires the adapters. Kafka and redis are optional: an empty
// broker list disables notifications and an empty redis address disables the
// restaurant cache.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	c := &CompositionRoot{
		cfg:      cfg,
		gormDB:   gormDB,
		logger:   logger,
		registry: registry,
		metrics:  m,
		clock:    commands.SystemClock,
	}

	var notifier ports.StatusNotifier
	if len(cfg.KafkaBrokers) > 0 {
		c.notifier = kafka.NewStatusNotifier(kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaOrderStatusTopic))
		notifier = c.notifier
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, notifier, logger, m)

	c.catalog = restaurantrepo.NewGormCatalog(gormDB)
	if cfg.RedisAddr != "" {
		c.redis = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{cfg.RedisAddr}})
		c.catalog = rediscache.NewCatalog(c.catalog, c.redis, cfg.CatalogCacheTTL, logger)
	}

	return c
}

// Registry returns the prometheus registry served on /metrics.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

// Close releases the kafka writer and the redis client.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.notifier != nil {
		errList = append(errList, c.notifier.Close())
	}
	if c.redis != nil {
		errList = append(errList, c.redis.Close())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) awarder() services.LoyaltyAwarder {
	return services.NewLoyaltyAwarder(c.cfg.Loyalty)
}

func (c *CompositionRoot) lifecycle() commands.OrderLifecycle {
	var f commands.OrderLifecycleUoWFactory = FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOrderLifecycle(f, c.awarder(), c.clock, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		c.catalog,
		services.NewPricingEngine(c.cfg.PlatformFee),
		c.clock,
		c.cfg.EstimatedDelivery,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.lifecycle())
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.lifecycle())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.lifecycle())
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.lifecycle())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.lifecycle())
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetDriverAvailabilityCommandHandler() commands.SetDriverAvailabilityCommandHandler {
	return commands.NewSetDriverAvailabilityCommandHandler(c.driverUoWFactory(), c.clock)
}

func (c *CompositionRoot) promoUoWFactory() commands.PromoUoWFactory {
	return FuncPromoUoWFactory(func() commands.PromoUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePromoCommandHandler() commands.CreatePromoCommandHandler {
	return commands.NewCreatePromoCommandHandler(c.promoUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTogglePromoCommandHandler() commands.TogglePromoCommandHandler {
	return commands.NewTogglePromoCommandHandler(c.promoUoWFactory())
}

func (c *CompositionRoot) loyaltyUoWFactory() commands.LoyaltyUoWFactory {
	return FuncLoyaltyUoWFactory(func() commands.LoyaltyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRedeemLoyaltyCommandHandler() commands.RedeemLoyaltyCommandHandler {
	return commands.NewRedeemLoyaltyCommandHandler(c.loyaltyUoWFactory(), c.awarder(), c.clock)
}

func (c *CompositionRoot) CreateAwardLoyaltyCommandHandler() commands.AwardLoyaltyCommandHandler {
	return commands.NewAwardLoyaltyCommandHandler(c.loyaltyUoWFactory(), c.awarder(), c.clock, c.metrics)
}

func (c *CompositionRoot) CreateExpireLoyaltyCoinsCommandHandler() commands.ExpireLoyaltyCoinsCommandHandler {
	return commands.NewExpireLoyaltyCoinsCommandHandler(c.loyaltyUoWFactory(), c.awarder(), c.clock)
}

func (c *CompositionRoot) CreateReconcileCapacityCommandHandler() commands.ReconcileCapacityCommandHandler {
	var f commands.CapacityUoWFactory = FuncCapacityUoWFactory(func() commands.CapacityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileCapacityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoyaltySummaryQueryHandler() queries.GetLoyaltySummaryQueryHandler {
	return queries.NewGetLoyaltySummaryQueryHandler(c.gormDB)
}

// CreateValidatePromoQueryHandler reads through a unit of work that is never
// begun, so its repositories run on the plain connection.
func (c *CompositionRoot) CreateValidatePromoQueryHandler() queries.ValidatePromoQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewValidatePromoQueryHandler(uow.PromoRepository(), uow.OrderRepository(), c.clock)
}

// CreateHTTPHandlers builds every use case exposed by the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	transition := c.CreateTransitionOrderCommandHandler()
	claim := c.CreateClaimOrderCommandHandler()
	accept := c.CreateAcceptOrderCommandHandler()
	decline := c.CreateDeclineOrderCommandHandler()
	dispatch := c.CreateDispatchOrderCommandHandler()
	payment := c.CreateUpdatePaymentStatusCommandHandler()
	registerDriver := c.CreateRegisterDriverCommandHandler()
	availability := c.CreateSetDriverAvailabilityCommandHandler()
	createPromo := c.CreateCreatePromoCommandHandler()
	togglePromo := c.CreateTogglePromoCommandHandler()
	redeem := c.CreateRedeemLoyaltyCommandHandler()
	award := c.CreateAwardLoyaltyCommandHandler()

	return httpin.Handlers{
		CreateOrder:           &createOrder,
		TransitionOrder:       &transition,
		ClaimOrder:            &claim,
		AcceptOrder:           &accept,
		DeclineOrder:          &decline,
		DispatchOrder:         &dispatch,
		UpdatePayment:         &payment,
		RegisterDriver:        &registerDriver,
		SetDriverAvailability: &availability,
		CreatePromo:           &createPromo,
		TogglePromo:           &togglePromo,
		ValidatePromo:         c.CreateValidatePromoQueryHandler(),
		RedeemLoyalty:         &redeem,
		AwardLoyalty:          &award,
		GetLoyaltySummary:     c.CreateGetLoyaltySummaryQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetActiveOrders:       c.CreateGetActiveOrdersQueryHandler(),
	}
}

// CreateJobManager builds the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expire := c.CreateExpireLoyaltyCoinsCommandHandler()
	reconcile := c.CreateReconcileCapacityCommandHandler()
	return jobs.NewJobManager(c.logger,
		jobs.NewCapacityReconciliationJob(&reconcile, c.logger),
		jobs.NewLoyaltyExpiryJob(&expire, c.cfg.ExpiryBatchSize, c.logger),
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderLifecycleUoWFactory func() commands.OrderLifecycleUoW

func (f FuncOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncPromoUoWFactory func() commands.PromoUoW

func (f FuncPromoUoWFactory) Create() commands.PromoUoW {
	return f()
}

type FuncLoyaltyUoWFactory func() commands.LoyaltyUoW

func (f FuncLoyaltyUoWFactory) Create() commands.LoyaltyUoW {
	return f()
}

type FuncCapacityUoWFactory func() commands.CapacityUoW

func (f FuncCapacityUoWFactory) Create() commands.CapacityUoW {
	return f()
}
