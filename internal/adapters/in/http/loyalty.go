package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetLoyaltySummary handles GET /api/v1/loyalty/summary for the calling user.
func (s *Server) GetLoyaltySummary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetLoyaltySummaryQuery(actor.ID())
	if err != nil {
		return s.fail(c, err)
	}

	summary, err := s.h.GetLoyaltySummary.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	recent := make([]servers.LoyaltyTransaction, 0, len(summary.RecentTransactions))
	for _, tx := range summary.RecentTransactions {
		recent = append(recent, servers.LoyaltyTransaction{
			Id:           tx.ID.Bytes(),
			OrderId:      optionalID(tx.OrderID),
			Type:         servers.LoyaltyTransactionType(tx.Type),
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			ExpiresAt:    tx.ExpiresAt,
			CreatedAt:    tx.CreatedAt,
		})
	}

	resp := servers.LoyaltySummary{
		UserId:             summary.UserID.Bytes(),
		Balance:            summary.Balance,
		Tier:               servers.LoyaltyTier(summary.Tier),
		TotalEarned:        summary.TotalEarned,
		TotalRedeemed:      summary.TotalRedeemed,
		CoinsToNextTier:    summary.CoinsToNextTier,
		RecentTransactions: recent,
	}
	if summary.NextTier != "" {
		next := servers.LoyaltyTier(summary.NextTier)
		resp.NextTier = &next
	}
	return c.JSON(http.StatusOK, resp)
}

// RedeemLoyalty handles POST /api/v1/loyalty/redeem.
func (s *Server) RedeemLoyalty(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req servers.RedeemLoyaltyJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRedeemLoyaltyCommand(actor, req.Coins)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.RedeemLoyalty.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Redemption{
		TransactionId: result.Transaction.ID().Bytes(),
		Coins:         req.Coins,
		Discount:      result.Discount.String(),
		Balance:       result.Balance,
	})
}

// AwardLoyalty handles POST /api/v1/admin/loyalty/orders/:orderId/award. It
// re-runs the award of a delivered order whose best-effort award failed.
func (s *Server) AwardLoyalty(c echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorWithRole(c, order.RoleAdmin)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := kernelID(orderId)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAwardLoyaltyCommand(actor, id)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.AwardLoyalty.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Award{
		Outcome: servers.AwardOutcome(result.Outcome.String()),
		Coins:   result.Coins,
	})
}
