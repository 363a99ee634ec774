package commands

import (
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrExpireLoyaltyCoinsCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"ExpireLoyaltyCoinsCommand must be created via NewExpireLoyaltyCoinsCommand constructor",
)

// ExpireLoyaltyCoinsCommand processes one batch of earned entries past expiry.
type ExpireLoyaltyCoinsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewExpireLoyaltyCoinsCommand creates the command. batchSize must be positive.
func NewExpireLoyaltyCoinsCommand(batchSize int) (ExpireLoyaltyCoinsCommand, error) {
	if batchSize <= 0 {
		return ExpireLoyaltyCoinsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return ExpireLoyaltyCoinsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireLoyaltyCoinsCommand) Validate() error {
	return c.guard.Validate(ErrExpireLoyaltyCoinsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of entries processed.
func (c ExpireLoyaltyCoinsCommand) BatchSize() int {
	return c.batchSize
}
