package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plantrent/backend/internal/domain/contract"
)

// ContractAssignmentLedger resolves a customer's billable plant assignments
// from their stored contracts. Statement generation reads through this and
// never touches contract rows directly.
type ContractAssignmentLedger struct {
	contractRepo contract.ContractRepository
}

// NewContractAssignmentLedger creates a new ContractAssignmentLedger
func NewContractAssignmentLedger(contractRepo contract.ContractRepository) *ContractAssignmentLedger {
	return &ContractAssignmentLedger{
		contractRepo: contractRepo,
	}
}

// EffectiveAssignments returns the merged assignments whose rental windows
// intersect [start, end], priced from the contract line snapshots.
func (l *ContractAssignmentLedger) EffectiveAssignments(ctx context.Context, customerID uuid.UUID, start, end time.Time) ([]contract.Assignment, error) {
	contracts, err := l.contractRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return contract.ResolveAssignments(contracts, start, end), nil
}

var _ contract.AssignmentLedger = (*ContractAssignmentLedger)(nil)
