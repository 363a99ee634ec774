package http

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/driver"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/core/domain/services"
)

// Use case handlers the server calls. The command and query handlers of the
// application layer satisfy them through their pointer receivers.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}

	DriverOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DriverOrderCommand) (*order.Order, error)
	}

	DispatchOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DispatchOrderCommand) (*order.Order, error)
	}

	UpdatePaymentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePaymentStatusCommand) (*order.Order, error)
	}

	RegisterDriverHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterDriverCommand) error
	}

	SetDriverAvailabilityHandler interface {
		Handle(ctx context.Context, cmd commands.SetDriverAvailabilityCommand) (*driver.Driver, error)
	}

	CreatePromoHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePromoCommand) (*promo.PromoCode, error)
	}

	TogglePromoHandler interface {
		Handle(ctx context.Context, cmd commands.TogglePromoCommand) (*promo.PromoCode, error)
	}

	RedeemLoyaltyHandler interface {
		Handle(ctx context.Context, cmd commands.RedeemLoyaltyCommand) (commands.RedeemResult, error)
	}

	AwardLoyaltyHandler interface {
		Handle(ctx context.Context, cmd commands.AwardLoyaltyCommand) (services.AwardResult, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}

	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}

	ValidatePromoHandler interface {
		Handle(ctx context.Context, query queries.ValidatePromoQuery) (queries.ValidatePromoQueryResponse, error)
	}

	GetLoyaltySummaryHandler interface {
		Handle(ctx context.Context, query queries.GetLoyaltySummaryQuery) (queries.GetLoyaltySummaryQueryResponse, error)
	}
)

// Handlers groups every use case exposed over HTTP.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	TransitionOrder TransitionOrderHandler
	ClaimOrder      DriverOrderHandler
	AcceptOrder     DriverOrderHandler
	DeclineOrder    DriverOrderHandler
	DispatchOrder   DispatchOrderHandler
	UpdatePayment   UpdatePaymentStatusHandler

	RegisterDriver        RegisterDriverHandler
	SetDriverAvailability SetDriverAvailabilityHandler

	CreatePromo   CreatePromoHandler
	TogglePromo   TogglePromoHandler
	ValidatePromo ValidatePromoHandler

	RedeemLoyalty     RedeemLoyaltyHandler
	AwardLoyalty      AwardLoyaltyHandler
	GetLoyaltySummary GetLoyaltySummaryHandler

	GetOrder        GetOrderHandler
	GetActiveOrders GetActiveOrdersHandler
}
