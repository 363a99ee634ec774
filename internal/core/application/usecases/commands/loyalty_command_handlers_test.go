package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func awarder() services.LoyaltyAwarder {
	return services.NewLoyaltyAwarder(services.DefaultLoyaltyPolicy())
}

func TestRedeemLoyaltyCommandHandler_Handle(t *testing.T) {
	t.Run("should debit coins and return their money value", func(t *testing.T) {
		ctx := t.Context()
		a := newActors(t)
		account, err := loyalty.RestoreAccount(a.customer.ID(), 120, 120, 0, now)
		require.NoError(t, err)
		uow := newMockUoW()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.loyalty.On("GetAccountForUpdate", ctx, a.customer.ID()).Return(account, nil).Once(),
			uow.loyalty.On("SaveAccount", ctx, account).Return(nil).Once(),
			uow.loyalty.On("AppendTransaction", ctx, mock.MatchedBy(func(tx *loyalty.Transaction) bool {
				return tx.Type() == loyalty.Redeemed && tx.Amount() == -50
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewRedeemLoyaltyCommand(a.customer, 50)
		require.NoError(t, err)

		handler := commands.NewRedeemLoyaltyCommandHandler(loyaltyFactory{uowFactory{uow}}, awarder(), fixedClock)
		res, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		uow.assertAll(t)
		assert.Equal(t, "50.00", res.Discount.String())
		assert.Equal(t, 70, res.Balance)
		assert.Equal(t, 50, account.TotalRedeemed())
	})

	t.Run("should refuse an insufficient balance", func(t *testing.T) {
		ctx := t.Context()
		a := newActors(t)
		account, err := loyalty.RestoreAccount(a.customer.ID(), 10, 10, 0, now)
		require.NoError(t, err)
		uow := newMockUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.loyalty.On("GetAccountForUpdate", ctx, a.customer.ID()).Return(account, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewRedeemLoyaltyCommand(a.customer, 50)
		require.NoError(t, err)

		handler := commands.NewRedeemLoyaltyCommandHandler(loyaltyFactory{uowFactory{uow}}, awarder(), fixedClock)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		uow.assertAll(t)
		assert.Equal(t, 10, account.Balance())
	})

	t.Run("should require positive coins", func(t *testing.T) {
		a := newActors(t)

		_, err := commands.NewRedeemLoyaltyCommand(a.customer, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestAwardLoyaltyCommandHandler_Handle(t *testing.T) {
	t.Run("should award a delivered order", func(t *testing.T) {
		ctx := t.Context()
		a := newActors(t)
		o := newTestOrder(t, a)
		moveTo(t, a, o, order.Delivered)
		account, err := loyalty.NewAccount(a.customer.ID(), now)
		require.NoError(t, err)
		uow := newMockUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.loyalty.On("HasOrderTransaction", ctx, o.ID(), loyalty.Earned).Return(false, nil).Once()
		uow.loyalty.On("EnsureAccount", ctx, a.customer.ID(), now).Return(nil).Once()
		uow.loyalty.On("GetAccountForUpdate", ctx, a.customer.ID()).Return(account, nil).Once()
		uow.loyalty.On("SaveAccount", ctx, account).Return(nil).Once()
		uow.loyalty.On("AppendTransaction", ctx, mock.AnythingOfType("*loyalty.Transaction")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewAwardLoyaltyCommand(a.admin, o.ID())
		require.NoError(t, err)

		handler := commands.NewAwardLoyaltyCommandHandler(loyaltyFactory{uowFactory{uow}}, awarder(), fixedClock, nil)
		res, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		uow.assertAll(t)
		assert.Equal(t, services.AwardOutcomeAwarded, res.Outcome)
		assert.Equal(t, 15, res.Coins)
	})

	t.Run("should be a no-op for an awarded order", func(t *testing.T) {
		ctx := t.Context()
		a := newActors(t)
		o := newTestOrder(t, a)
		moveTo(t, a, o, order.Delivered)
		uow := newMockUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.loyalty.On("HasOrderTransaction", ctx, o.ID(), loyalty.Earned).Return(true, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewAwardLoyaltyCommand(a.admin, o.ID())
		require.NoError(t, err)

		handler := commands.NewAwardLoyaltyCommandHandler(loyaltyFactory{uowFactory{uow}}, awarder(), fixedClock, nil)
		res, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		uow.assertAll(t)
		assert.Equal(t, services.AwardOutcomeAlreadyAwarded, res.Outcome)
	})

	t.Run("should refuse an order that is not delivered", func(t *testing.T) {
		ctx := t.Context()
		a := newActors(t)
		o := newTestOrder(t, a)
		uow := newMockUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewAwardLoyaltyCommand(a.admin, o.ID())
		require.NoError(t, err)

		handler := commands.NewAwardLoyaltyCommandHandler(loyaltyFactory{uowFactory{uow}}, awarder(), fixedClock, nil)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		uow.assertAll(t)
	})
}

func TestExpireLoyaltyCoinsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	account, err := loyalty.RestoreAccount(userID, 8, 30, 0, now)
	require.NoError(t, err)

	earned := func(amount int) *loyalty.Transaction {
		orderID := kernel.NewUUID()
		expiresAt := now.Add(-time.Hour)
		tx, txErr := loyalty.NewTransaction(loyalty.TransactionParams{
			ID:           kernel.NewUUID(),
			UserID:       userID,
			OrderID:      &orderID,
			Type:         loyalty.Earned,
			Amount:       amount,
			BalanceAfter: amount,
			ExpiresAt:    &expiresAt,
			CreatedAt:    now.Add(-366 * 24 * time.Hour),
		})
		require.NoError(t, txErr)
		return tx
	}
	first, second := earned(5), earned(20)

	uow := newMockUoW()
	uow.loyalty.On("ListExpiredUnprocessed", ctx, now, 50).Return([]*loyalty.Transaction{first, second}, nil).Once()
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.loyalty.On("GetAccountForUpdate", ctx, userID).Return(account, nil).Once()
	uow.loyalty.On("SaveAccount", ctx, account).Return(nil).Once()
	uow.loyalty.On("AppendTransaction", ctx, mock.MatchedBy(func(tx *loyalty.Transaction) bool {
		return tx.Type() == loyalty.Expired && tx.Amount() == -5
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.loyalty.On("GetAccountForUpdate", ctx, userID).Return(nil, errors.New("lock timeout")).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	cmd, err := commands.NewExpireLoyaltyCoinsCommand(50)
	require.NoError(t, err)

	handler := commands.NewExpireLoyaltyCoinsCommandHandler(loyaltyFactory{uowFactory{uow}}, awarder(), fixedClock)
	expired, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock timeout")
	assert.Equal(t, 1, expired)
	assert.Equal(t, 3, account.Balance())
	uow.assertAll(t)
}

func TestReconcileCapacityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.capacity.On("ReconcileOrderCounts", ctx).Return(int64(2), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewReconcileCapacityCommandHandler(capacityFactory{uowFactory{uow}})
	corrected, err := handler.Handle(ctx, commands.NewReconcileCapacityCommand())

	require.NoError(t, err)
	assert.Equal(t, int64(2), corrected)
	uow.assertAll(t)
}
