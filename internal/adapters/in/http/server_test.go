package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	server "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockTransitionOrderHandler struct {
	mock.Mock
}

func (m *MockTransitionOrderHandler) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDriverOrderHandler struct {
	mock.Mock
}

func (m *MockDriverOrderHandler) Handle(ctx context.Context, cmd commands.DriverOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUpdatePaymentHandler struct {
	mock.Mock
}

func (m *MockUpdatePaymentHandler) Handle(ctx context.Context, cmd commands.UpdatePaymentStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockGetOrderHandler struct {
	mock.Mock
}

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.GetOrderQueryResponse), args.Error(1)
}

type MockValidatePromoHandler struct {
	mock.Mock
}

func (m *MockValidatePromoHandler) Handle(ctx context.Context, query queries.ValidatePromoQuery) (queries.ValidatePromoQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ValidatePromoQueryResponse), args.Error(1)
}

type MockGetLoyaltySummaryHandler struct {
	mock.Mock
}

func (m *MockGetLoyaltySummaryHandler) Handle(ctx context.Context, query queries.GetLoyaltySummaryQuery) (queries.GetLoyaltySummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetLoyaltySummaryQueryResponse), args.Error(1)
}

type fixture struct {
	createOrder *MockCreateOrderHandler
	transition  *MockTransitionOrderHandler
	claim       *MockDriverOrderHandler
	accept      *MockDriverOrderHandler
	decline     *MockDriverOrderHandler
	payment     *MockUpdatePaymentHandler
	getOrder    *MockGetOrderHandler
	validate    *MockValidatePromoHandler
	summary     *MockGetLoyaltySummaryHandler
	handler     http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		createOrder: new(MockCreateOrderHandler),
		transition:  new(MockTransitionOrderHandler),
		claim:       new(MockDriverOrderHandler),
		accept:      new(MockDriverOrderHandler),
		decline:     new(MockDriverOrderHandler),
		payment:     new(MockUpdatePaymentHandler),
		getOrder:    new(MockGetOrderHandler),
		validate:    new(MockValidatePromoHandler),
		summary:     new(MockGetLoyaltySummaryHandler),
	}
	s := server.NewServer(server.Handlers{
		CreateOrder:       f.createOrder,
		TransitionOrder:   f.transition,
		ClaimOrder:        f.claim,
		AcceptOrder:       f.accept,
		DeclineOrder:      f.decline,
		UpdatePayment:     f.payment,
		GetOrder:          f.getOrder,
		ValidatePromo:     f.validate,
		GetLoyaltySummary: f.summary,
	}, slog.New(slog.DiscardHandler))
	e, err := server.NewEcho(s, prometheus.NewRegistry())
	require.NoError(t, err)
	f.handler = e
	return f
}

func (f fixture) do(method, path, body string, actorID kernel.UUID, role order.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(server.HeaderActorID, actorID.String())
		req.Header.Set(server.HeaderActorRole, string(role))
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", kernel.UUID{}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "", kernel.UUID{}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActorHeaders(t *testing.T) {
	f := newFixture(t)

	t.Run("should reject requests without identity", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "", kernel.UUID{}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/loyalty/summary", "", kernel.NewUUID(), "chef")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	customerID, restaurantID, menuItemID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	body := `{
		"restaurantId": "` + restaurantID.String() + `",
		"items": [{"menuItemId": "` + menuItemID.String() + `", "quantity": 2,
			"customizations": [{"name": "size", "option": "large"}]}],
		"deliveryAddress": {"street": "12 MG Road", "city": "Bengaluru", "postalCode": "560001",
			"latitude": 12.9352, "longitude": 77.6245},
		"contactPhone": "+919876543210",
		"paymentMethod": "card",
		"promoCode": "save20"
	}`

	t.Run("should pass the checkout to the handler and return the order", func(t *testing.T) {
		f := newFixture(t)
		created := pgtest.NewOrder(t, customerID, restaurantID, placedAt)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			items := cmd.Items()
			return cmd.Customer().ID().IsEqual(customerID) &&
				cmd.RestaurantID().IsEqual(restaurantID) &&
				len(items) == 1 && items[0].Quantity == 2 &&
				items[0].Customizations[0].Option == "large" &&
				cmd.PromoCode() == "SAVE20" &&
				cmd.PaymentMethod() == order.PaymentCard
		})).Return(created, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", body, customerID, order.RoleCustomer)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, created.ID().String(), resp["id"])
		assert.Equal(t, "pending", resp["status"])
		assert.Equal(t, "300.00", resp["pricing"].(map[string]any)["total"])
		f.createOrder.AssertExpectations(t)
	})

	t.Run("should report invalid input without calling the handler", func(t *testing.T) {
		f := newFixture(t)
		invalid := strings.Replace(body, `"card"`, `"barter"`, 1)

		rec := f.do(http.MethodPost, "/api/v1/orders", invalid, customerID, order.RoleCustomer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should map handler errors to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"capacity", errs.NewConflictError("restaurant", "is at capacity"), http.StatusConflict},
			{"closed", errs.NewValueIsInvalidError("restaurant"), http.StatusBadRequest},
			{"unknown", errs.NewObjectNotFoundError("restaurant", restaurantID.String()), http.StatusNotFound},
			{"role", errs.NewForbiddenError("driver", "create orders"), http.StatusForbidden},
			{"stale", errs.NewVersionIsInvalidError("order"), http.StatusConflict},
			{"database", errors.New("connection reset"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				f.createOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err)

				rec := f.do(http.MethodPost, "/api/v1/orders", body, customerID, order.RoleCustomer)

				assert.Equal(t, tc.code, rec.Code)
				payload := decode[servers.Error](t, rec)
				assert.Equal(t, tc.code, payload.Code)
				if tc.code == http.StatusInternalServerError {
					assert.NotContains(t, payload.Message, "connection reset")
				}
			})
		}
	})
}

func TestChangeDriverOrderStatus_RoutesByTargetStatus(t *testing.T) {
	driverID := kernel.NewUUID()
	o := pgtest.NewOrder(t, kernel.NewUUID(), kernel.NewUUID(), placedAt)
	path := "/api/v1/driver/orders/" + o.ID().String() + "/status"

	t.Run("should claim on assigned", func(t *testing.T) {
		f := newFixture(t)
		f.claim.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DriverOrderCommand) bool {
			return cmd.OrderID().IsEqual(o.ID()) && cmd.Driver().ID().IsEqual(driverID)
		})).Return(o, nil).Once()

		rec := f.do(http.MethodPost, path, `{"status": "assigned"}`, driverID, order.RoleDriver)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.claim.AssertExpectations(t)
	})

	t.Run("should report a lost claim race as a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.claim.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewConflictError("order "+o.ID().String(), "already claimed"))

		rec := f.do(http.MethodPost, path, `{"status": "assigned"}`, driverID, order.RoleDriver)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "already claimed")
	})

	t.Run("should accept on picked", func(t *testing.T) {
		f := newFixture(t)
		f.accept.On("Handle", mock.Anything, mock.Anything).Return(o, nil).Once()

		rec := f.do(http.MethodPost, path, `{"status": "picked"}`, driverID, order.RoleDriver)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.accept.AssertExpectations(t)
	})

	t.Run("should decline on ready with the note as reason", func(t *testing.T) {
		f := newFixture(t)
		f.decline.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DriverOrderCommand) bool {
			return cmd.Reason() == "flat tyre"
		})).Return(o, nil).Once()

		rec := f.do(http.MethodPost, path, `{"status": "ready", "note": "flat tyre"}`, driverID, order.RoleDriver)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.decline.AssertExpectations(t)
	})

	t.Run("should transition on delivered", func(t *testing.T) {
		f := newFixture(t)
		f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
			return cmd.Target() == order.Delivered && cmd.Actor().Role() == order.RoleDriver
		})).Return(o, nil).Once()

		rec := f.do(http.MethodPost, path, `{"status": "delivered"}`, driverID, order.RoleDriver)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.transition.AssertExpectations(t)
	})

	t.Run("should forbid non-drivers before reaching the handler", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, path, `{"status": "assigned"}`, kernel.NewUUID(), order.RoleCustomer)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		f.claim.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestCancelOrder(t *testing.T) {
	f := newFixture(t)
	customerID := kernel.NewUUID()
	o := pgtest.NewOrder(t, customerID, kernel.NewUUID(), placedAt)
	f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
		return cmd.Target() == order.Cancelled && cmd.Note() == "changed my mind"
	})).Return(o, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/customer/orders/"+o.ID().String()+"/cancel",
		`{"reason": "changed my mind"}`, customerID, order.RoleCustomer)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.transition.AssertExpectations(t)
}

func TestChangeRestaurantOrderStatus_UnknownStatus(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/restaurant/orders/"+kernel.NewUUID().String()+"/status",
		`{"status": "teleported"}`, kernel.NewUUID(), order.RoleRestaurant)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetOrder(t *testing.T) {
	ctx := mock.Anything
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("should render the read model", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", ctx, mock.Anything).Return(&queries.GetOrderQueryResponse{
			ID:      orderID,
			Status:  order.Preparing,
			Pricing: queries.PricingView{Total: kernel.MoneyFromFloat(420)},
			Items: []queries.OrderItemView{{
				MenuItemID: kernel.NewUUID(), Name: "Masala Dosa", UnitPrice: kernel.MoneyFromFloat(120), Quantity: 2,
			}},
			History: []queries.StatusEntryView{{Status: order.Pending, ActorID: customerID, ActorRole: order.RoleCustomer}},
			AllowedTransitions: []order.Status{order.Cancelled},
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", customerID, order.RoleCustomer)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, "preparing", resp["status"])
		assert.Equal(t, "420.00", resp["pricing"].(map[string]any)["total"])
		assert.Len(t, resp["items"], 1)
		assert.Len(t, resp["history"], 1)
		assert.Equal(t, []any{"cancelled"}, resp["allowedTransitions"])
	})

	t.Run("should reject a malformed id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "", customerID, order.RoleCustomer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should report forbidden reads", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", ctx, mock.Anything).Return(nil, errs.NewForbiddenError("customer", "view order"))

		rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", customerID, order.RoleCustomer)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestValidatePromo(t *testing.T) {
	userID, restaurantID := kernel.NewUUID(), kernel.NewUUID()
	body := `{"code": "save20", "orderValue": "400", "restaurantId": "` + restaurantID.String() + `"}`

	t.Run("should return the discount for the calling user", func(t *testing.T) {
		f := newFixture(t)
		f.validate.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ValidatePromoQuery) bool {
			return q.Code() == "SAVE20" && q.UserID().IsEqual(userID) && q.OrderValue().String() == "400.00"
		})).Return(queries.ValidatePromoQueryResponse{Valid: true, Discount: kernel.MoneyFromFloat(80)}, nil)

		rec := f.do(http.MethodPost, "/api/v1/promos/validate", body, userID, order.RoleCustomer)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, true, resp["valid"])
		assert.Equal(t, "80.00", resp["discount"])
	})

	t.Run("should report a rejection as an invalid result", func(t *testing.T) {
		f := newFixture(t)
		f.validate.On("Handle", mock.Anything, mock.Anything).Return(queries.ValidatePromoQueryResponse{
			Valid: false, Discount: kernel.ZeroMoney(), Reason: "promo code has expired or is not yet valid",
		}, nil)

		rec := f.do(http.MethodPost, "/api/v1/promos/validate", body, userID, order.RoleCustomer)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[map[string]any](t, rec)
		assert.Equal(t, false, resp["valid"])
		assert.Equal(t, "promo code has expired or is not yet valid", resp["reason"])
	})

	t.Run("should reject a malformed order value", func(t *testing.T) {
		f := newFixture(t)
		invalid := strings.Replace(body, `"400"`, `"lots"`, 1)

		rec := f.do(http.MethodPost, "/api/v1/promos/validate", invalid, userID, order.RoleCustomer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetLoyaltySummary(t *testing.T) {
	f := newFixture(t)
	userID := kernel.NewUUID()
	f.summary.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetLoyaltySummaryQuery) bool {
		return q.UserID().IsEqual(userID)
	})).Return(queries.GetLoyaltySummaryQueryResponse{
		UserID:          userID,
		Balance:         120,
		Tier:            loyalty.Bronze,
		TotalEarned:     120,
		NextTier:        loyalty.Silver,
		CoinsToNextTier: 380,
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/loyalty/summary", "", userID, order.RoleCustomer)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[map[string]any](t, rec)
	assert.Equal(t, "bronze", resp["tier"])
	assert.Equal(t, "silver", resp["nextTier"])
	assert.InDelta(t, 380, resp["coinsToNextTier"], 0)
	assert.Empty(t, resp["recentTransactions"])
}

func TestRoleEndpoints_RejectOtherRoles(t *testing.T) {
	orderID := kernel.NewUUID().String()
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		role   order.Role
	}{
		{"customer on restaurant status", http.MethodPost, "/api/v1/restaurant/orders/" + orderID + "/status", `{"status": "confirmed"}`, order.RoleCustomer},
		{"restaurant on customer cancel", http.MethodPost, "/api/v1/customer/orders/" + orderID + "/cancel", `{"reason": "out of paneer"}`, order.RoleRestaurant},
		{"customer on driver status", http.MethodPost, "/api/v1/driver/orders/" + orderID + "/status", `{"status": "delivered"}`, order.RoleCustomer},
		{"restaurant on driver availability", http.MethodPut, "/api/v1/driver/availability", `{"available": true}`, order.RoleRestaurant},
		{"driver on admin dispatch", http.MethodPost, "/api/v1/admin/orders/" + orderID + "/dispatch", `{"driverId": "` + kernel.NewUUID().String() + `"}`, order.RoleDriver},
		{"customer on admin promos", http.MethodPost, "/api/v1/admin/promos/SAVE20/toggle", `{"active": false}`, order.RoleCustomer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(tc.method, tc.path, tc.body, kernel.NewUUID(), tc.role)

			require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
			assert.Contains(t, decode[servers.Error](t, rec).Message, "forbidden")
			f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	t.Run("should reject a body missing required fields", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"restaurantId": "`+kernel.NewUUID().String()+`"}`,
			kernel.NewUUID(), order.RoleCustomer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decode[servers.Error](t, rec).Code)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a half-set identity", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/loyalty/summary", nil)
		req.Header.Set(server.HeaderActorID, kernel.NewUUID().String())
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.summary.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should accept payment callbacks without identity", func(t *testing.T) {
		f := newFixture(t)
		o := pgtest.NewOrder(t, kernel.NewUUID(), kernel.NewUUID(), placedAt)
		f.payment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdatePaymentStatusCommand) bool {
			return cmd.OrderID().IsEqual(o.ID()) && cmd.Status() == order.PaymentCompleted
		})).Return(o, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/payment",
			`{"status": "completed", "transactionRef": "txn_81", "gateway": "razorpay"}`, kernel.UUID{}, "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		f.payment.AssertExpectations(t)
	})
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/menus", "", kernel.NewUUID(), order.RoleCustomer)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decode[servers.Error](t, rec).Code)
}

func TestSwaggerDoc(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "", kernel.UUID{}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Equal(t, "Food Order Service", doc["info"].(map[string]any)["title"])
	assert.Contains(t, doc["paths"], "/api/v1/restaurant/orders/{orderId}/status")
}
