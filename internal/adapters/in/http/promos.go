package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/promo"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func toPromo(p *promo.PromoCode) servers.Promo {
	restaurants := make([]openapi_types.UUID, 0, len(p.Restaurants()))
	for _, id := range p.Restaurants() {
		restaurants = append(restaurants, id.Bytes())
	}
	limit := p.UsageLimit()
	return servers.Promo{
		Id:            p.ID().Bytes(),
		Code:          p.Code(),
		Description:   optionalString(p.Description()),
		Type:          servers.DiscountType(p.Type()),
		Value:         p.Value().String(),
		MaxDiscount:   optionalMoney(p.MaxDiscount()),
		MinOrderValue: p.MinOrderValue().String(),
		ValidFrom:     p.ValidFrom(),
		ValidUntil:    p.ValidUntil(),
		UsageLimit:    servers.UsageLimit{Total: limit.Total, PerUser: limit.PerUser},
		UsageCount:    p.UsageCount(),
		ApplicableFor: servers.Applicability(p.ApplicableFor()),
		Restaurants:   restaurants,
		Active:        p.IsActive(),
	}
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return d, nil
}

func parseMoney(name, raw string) (kernel.Money, error) {
	d, err := parseDecimal(name, raw)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(d), nil
}

func promoDefinition(req servers.NewPromo) (commands.PromoDefinition, error) {
	value, valueErr := parseDecimal("value", req.Value)

	minOrderValue := kernel.ZeroMoney()
	var minErr error
	if req.MinOrderValue != nil {
		minOrderValue, minErr = parseMoney("min order value", *req.MinOrderValue)
	}

	var maxDiscount *kernel.Money
	var maxErr error
	if req.MaxDiscount != nil {
		var m kernel.Money
		if m, maxErr = parseMoney("max discount", *req.MaxDiscount); maxErr == nil {
			maxDiscount = &m
		}
	}

	var restaurants []kernel.UUID
	validationErrs := []error{valueErr, minErr, maxErr}
	if req.Restaurants != nil {
		for _, raw := range *req.Restaurants {
			id, err := kernelID(raw)
			if err != nil {
				validationErrs = append(validationErrs, err)
				continue
			}
			restaurants = append(restaurants, id)
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return commands.PromoDefinition{}, err
	}

	applicable := promo.ApplicableAll
	if req.ApplicableFor != nil {
		applicable = promo.Applicability(*req.ApplicableFor)
	}
	var limit promo.UsageLimit
	if req.UsageLimit != nil {
		limit = promo.UsageLimit{Total: req.UsageLimit.Total, PerUser: req.UsageLimit.PerUser}
	}

	return commands.PromoDefinition{
		Code:          req.Code,
		Description:   valueOf(req.Description),
		Type:          promo.DiscountType(req.Type),
		Value:         value,
		MaxDiscount:   maxDiscount,
		MinOrderValue: minOrderValue,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		UsageLimit:    limit,
		ApplicableFor: applicable,
		Restaurants:   restaurants,
	}, nil
}

// CreatePromo handles POST /api/v1/admin/promos.
func (s *Server) CreatePromo(c echo.Context) error {
	actor, err := actorWithRole(c, order.RoleAdmin)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.CreatePromoJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	definition, err := promoDefinition(req)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreatePromoCommand(actor, definition)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreatePromo.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toPromo(created))
}

// TogglePromo handles POST /api/v1/admin/promos/:code/toggle.
func (s *Server) TogglePromo(c echo.Context, code string) error {
	actor, err := actorWithRole(c, order.RoleAdmin)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.TogglePromoJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewTogglePromoCommand(actor, code, req.Active)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.TogglePromo.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPromo(updated))
}

// ValidatePromo handles POST /api/v1/promos/validate. A code that does not
// apply is a 200 with valid=false and the reason.
func (s *Server) ValidatePromo(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.ValidatePromoJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	orderValue, valueErr := parseMoney("order value", req.OrderValue)
	restaurantID, restaurantErr := kernelID(req.RestaurantId)
	if err = errors.Join(valueErr, restaurantErr); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewValidatePromoQuery(req.Code, orderValue, restaurantID, actor.ID())
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.ValidatePromo.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.PromoValidation{
		Valid:    result.Valid,
		Discount: result.Discount.String(),
		Reason:   optionalString(result.Reason),
	})
}
