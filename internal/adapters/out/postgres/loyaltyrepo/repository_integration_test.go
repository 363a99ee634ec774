package loyaltyrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/loyaltyrepo"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/loyalty"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type LoyaltyRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *loyaltyrepo.GormLoyaltyRepository
	now        time.Time
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = loyaltyrepo.NewGormLoyaltyRepository(suite.db)
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) entry(
	userID kernel.UUID,
	orderID *kernel.UUID,
	txType loyalty.TransactionType,
	amount int,
	createdAt time.Time,
	expiresAt *time.Time,
) *loyalty.Transaction {
	balance := amount
	if balance < 0 {
		balance = 0
	}
	tx, err := loyalty.NewTransaction(loyalty.TransactionParams{
		ID:           kernel.NewUUID(),
		UserID:       userID,
		OrderID:      orderID,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: balance,
		ExpiresAt:    expiresAt,
		Metadata:     map[string]string{"source": "test"},
		CreatedAt:    createdAt,
	})
	suite.Require().NoError(err)
	return tx
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TestEnsureAccount_IsIdempotent() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.EnsureAccount(ctx, userID, suite.now))

	account, err := suite.repository.GetAccountForUpdate(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().NoError(account.Credit(150, suite.now))
	suite.Require().NoError(suite.repository.SaveAccount(ctx, account))

	suite.Require().NoError(suite.repository.EnsureAccount(ctx, userID, suite.now.Add(time.Hour)))

	restored, err := suite.repository.GetAccount(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(150, restored.Balance())
	suite.Equal(150, restored.TotalEarned())
	suite.Equal(loyalty.Bronze, restored.Tier())
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TestGetAccount_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetAccount(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TestAppendTransaction_SecondEarnedForOrder_ReturnsConflict() {
	ctx := context.Background()
	userID, orderID := kernel.NewUUID(), kernel.NewUUID()

	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &orderID, loyalty.Earned, 30, suite.now, nil)))

	err := suite.repository.AppendTransaction(ctx, suite.entry(userID, &orderID, loyalty.Earned, 30, suite.now, nil))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Contains(err.Error(), "already has an earned entry")

	suite.Run("should still accept other entry types for the order", func() {
		suite.Require().NoError(suite.repository.AppendTransaction(ctx,
			suite.entry(userID, &orderID, loyalty.Redeemed, -10, suite.now, nil)))
		suite.Require().NoError(suite.repository.AppendTransaction(ctx,
			suite.entry(userID, &orderID, loyalty.Redeemed, -5, suite.now, nil)))
	})
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TestHasOrderTransaction() {
	ctx := context.Background()
	userID, orderID := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &orderID, loyalty.Earned, 12, suite.now, nil)))

	earned, err := suite.repository.HasOrderTransaction(ctx, orderID, loyalty.Earned)
	suite.Require().NoError(err)
	suite.True(earned)

	expired, err := suite.repository.HasOrderTransaction(ctx, orderID, loyalty.Expired)
	suite.Require().NoError(err)
	suite.False(expired)
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TestRecentTransactions_NewestFirstWithLimit() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	for i := range 4 {
		orderID := kernel.NewUUID()
		suite.Require().NoError(suite.repository.AppendTransaction(ctx,
			suite.entry(userID, &orderID, loyalty.Earned, 10+i, suite.now.Add(time.Duration(i)*time.Hour), nil)))
	}
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(kernel.NewUUID(), nil, loyalty.Bonus, 99, suite.now.Add(10*time.Hour), nil)))

	txs, err := suite.repository.RecentTransactions(ctx, userID, 3)

	suite.Require().NoError(err)
	suite.Require().Len(txs, 3)
	suite.Equal(13, txs[0].Amount())
	suite.Equal(12, txs[1].Amount())
	suite.Equal(11, txs[2].Amount())
	suite.Equal("test", txs[0].Metadata()["source"])
}

func (suite *LoyaltyRepositoryIntegrationTestSuite) TestListExpiredUnprocessed() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	past := suite.now.Add(-time.Hour)
	older := suite.now.Add(-48 * time.Hour)
	future := suite.now.Add(time.Hour)

	due, olderDue, processed, notYet := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &due, loyalty.Earned, 20, suite.now.AddDate(-1, 0, 0), &past)))
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &olderDue, loyalty.Earned, 40, suite.now.AddDate(-1, 0, 0), &older)))
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &processed, loyalty.Earned, 50, suite.now.AddDate(-1, 0, 0), &past)))
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &processed, loyalty.Expired, -50, suite.now, nil)))
	suite.Require().NoError(suite.repository.AppendTransaction(ctx,
		suite.entry(userID, &notYet, loyalty.Earned, 60, suite.now, &future)))

	suite.Run("should return due entries oldest first", func() {
		txs, err := suite.repository.ListExpiredUnprocessed(ctx, suite.now, 10)
		suite.Require().NoError(err)
		suite.Require().Len(txs, 2)
		suite.True(txs[0].OrderID().IsEqual(olderDue))
		suite.True(txs[1].OrderID().IsEqual(due))
	})

	suite.Run("should respect the batch limit", func() {
		txs, err := suite.repository.ListExpiredUnprocessed(ctx, suite.now, 1)
		suite.Require().NoError(err)
		suite.Len(txs, 1)
	})
}

func TestLoyaltyRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyRepositoryIntegrationTestSuite))
}
