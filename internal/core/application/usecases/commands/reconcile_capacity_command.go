package commands

import (
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrReconcileCapacityCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"ReconcileCapacityCommand must be created via NewReconcileCapacityCommand constructor",
)

// ReconcileCapacityCommand recomputes every restaurant's concurrent order counter.
// This command requires no parameters.
type ReconcileCapacityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileCapacityCommand creates the reconciliation command.
func NewReconcileCapacityCommand() ReconcileCapacityCommand {
	return ReconcileCapacityCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileCapacityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCapacityCommandIsNotConstructed)
}
