package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder handles POST /api/v1/orders - a customer checkout.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.CreateOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := newCreateOrderCommand(actor, req)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(created))
}

func newCreateOrderCommand(actor order.Actor, req servers.NewOrder) (commands.CreateOrderCommand, error) {
	restaurantID, restaurantErr := kernelID(req.RestaurantId)
	method, methodErr := order.ParsePaymentMethod(string(req.PaymentMethod))

	a := req.DeliveryAddress
	var address order.DeliveryAddress
	location, addressErr := kernel.NewLocation(a.Latitude, a.Longitude)
	if addressErr == nil {
		address, addressErr = order.NewDeliveryAddress(a.Street, a.City, a.PostalCode, location, valueOf(a.Instructions))
	}

	items := make([]commands.OrderItemRequest, 0, len(req.Items))
	itemErrs := make([]error, 0)
	for _, item := range req.Items {
		menuItemID, idErr := kernelID(item.MenuItemId)
		if idErr != nil {
			itemErrs = append(itemErrs, idErr)
			continue
		}
		var customizations []commands.SelectedCustomization
		if item.Customizations != nil {
			customizations = make([]commands.SelectedCustomization, 0, len(*item.Customizations))
			for _, sel := range *item.Customizations {
				customizations = append(customizations, commands.SelectedCustomization{Name: sel.Name, Option: sel.Option})
			}
		}
		items = append(items, commands.OrderItemRequest{
			MenuItemID:     menuItemID,
			Quantity:       item.Quantity,
			Customizations: customizations,
			Instructions:   valueOf(item.Instructions),
		})
	}

	if err := errors.Join(append(itemErrs, restaurantErr, methodErr, addressErr)...); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(actor, restaurantID, items, address, req.ContactPhone, method, valueOf(req.PromoCode))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(c echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := kernelID(orderId)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderDetail(found))
}

// GetActiveOrders handles GET /api/v1/orders/active - the caller's open orders.
func (s *Server) GetActiveOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.h.GetActiveOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = toActiveOrder(o)
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeRestaurantOrderStatus handles POST /api/v1/restaurant/orders/:orderId/status.
func (s *Server) ChangeRestaurantOrderStatus(c echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorWithRole(c, order.RoleRestaurant)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.ChangeRestaurantOrderStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	return s.transition(c, actor, orderId, string(req.Status), valueOf(req.Note))
}

// CancelOrder handles POST /api/v1/customer/orders/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorWithRole(c, order.RoleCustomer)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.CancelOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	return s.transition(c, actor, orderId, order.Cancelled.String(), valueOf(req.Reason))
}

// ChangeDriverOrderStatus handles POST /api/v1/driver/orders/:orderId/status.
// The target status selects the driver use case. Statuses without one are a
// plain transition.
func (s *Server) ChangeDriverOrderStatus(c echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorWithRole(c, order.RoleDriver)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.ChangeDriverOrderStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	var handler DriverOrderHandler
	switch req.Status {
	case servers.OrderStatusAssigned:
		handler = s.h.ClaimOrder
	case servers.OrderStatusPicked:
		handler = s.h.AcceptOrder
	case servers.OrderStatusReady:
		handler = s.h.DeclineOrder
	default:
		return s.transition(c, actor, orderId, string(req.Status), valueOf(req.Note))
	}

	id, err := kernelID(orderId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDriverOrderCommand(id, actor, valueOf(req.Note))
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := handler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(updated))
}

func (s *Server) transition(c echo.Context, actor order.Actor, orderId openapi_types.UUID, rawStatus, note string) error {
	id, idErr := kernelID(orderId)
	target, statusErr := order.ParseStatus(rawStatus)
	if err := errors.Join(idErr, statusErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(id, actor, target, note)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(updated))
}

// DispatchOrder handles POST /api/v1/admin/orders/:orderId/dispatch.
func (s *Server) DispatchOrder(c echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorWithRole(c, order.RoleAdmin)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.DispatchOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	id, idErr := kernelID(orderId)
	driverID, driverErr := kernelID(req.DriverId)
	if err = errors.Join(idErr, driverErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(id, actor, driverID, valueOf(req.Note))
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.DispatchOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(updated))
}

// UpdatePayment handles POST /api/v1/orders/:orderId/payment - a payment
// outcome reported by the payment collaborator.
func (s *Server) UpdatePayment(c echo.Context, orderId openapi_types.UUID) error {
	var req servers.UpdatePaymentJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	id, err := kernelID(orderId)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(id, order.PaymentStatus(req.Status), valueOf(req.TransactionRef), valueOf(req.Gateway))
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(updated))
}
