package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrRepairOrderNumbersCommandIsNotConstructed = errors.New(
		"RepairOrderNumbersCommand must be created via NewRepairOrderNumbersCommand constructor",
	)
)

// RepairOrderNumbersCommand sweeps for persisted orders that never received a
// display number and assigns one. Numbering normally happens in the creating
// transaction; this repairs rows left behind by writes that crashed between
// insert and numbering.
type RepairOrderNumbersCommand struct {
	guard guard.ConstructorGuard
}

// NewRepairOrderNumbersCommand creates a command to repair unnumbered orders.
// This is a parameterless command; the handler bounds each sweep's batch size.
func NewRepairOrderNumbersCommand() RepairOrderNumbersCommand {
	return RepairOrderNumbersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RepairOrderNumbersCommand) Validate() error {
	return c.guard.Validate(ErrRepairOrderNumbersCommandIsNotConstructed)
}
