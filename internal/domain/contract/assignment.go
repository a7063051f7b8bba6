package contract

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Assignment is the ledger view the billing context consumes: one plant type
// a customer holds over a window, at the contract price in effect. It is a
// plain value derived from contracts, never persisted on its own.
type Assignment struct {
	PlantTypeID uuid.UUID
	PlantName   string
	SizeSpec    string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// AssignmentLedger resolves the plants a customer holds over a date window.
// The billing context depends on this interface rather than on contract
// storage directly.
type AssignmentLedger interface {
	// EffectiveAssignments returns the assignments whose windows intersect
	// [start, end], with quantities resolved per ResolveAssignments. An empty
	// slice means the customer holds no plants in the window.
	EffectiveAssignments(ctx context.Context, customerID uuid.UUID, start, end time.Time) ([]Assignment, error)
}

// ResolveAssignments derives the effective assignments for a window from the
// given contracts. The function is pure.
//
// An item contributes when its window intersects [start, end] (both dates
// inclusive) and the contract has left draft. The contributed quantity is
// the unit count in effect on the item's last active day within the window:
// the window end, or the item's own end date when that comes first. Lines
// whose resolved quantity is zero drop out. Items of the same plant type,
// size and price merge into one assignment; the result is ordered by plant
// name, size, price, then plant type ID so equal inputs yield equal output.
func ResolveAssignments(contracts []RentalContract, start, end time.Time) []Assignment {
	type key struct {
		plantTypeID uuid.UUID
		sizeSpec    string
		price       string
	}

	windowStart := normalizeDate(start)
	windowEnd := normalizeDate(end)

	merged := make(map[key]*Assignment)
	for ci := range contracts {
		c := &contracts[ci]
		if c.Status == ContractStatusDraft {
			continue
		}
		for ii := range c.Items {
			item := &c.Items[ii]
			if !item.Overlaps(windowStart, windowEnd) {
				continue
			}

			asOf := windowEnd
			if item.EffectiveTo != nil && item.EffectiveTo.Before(asOf) {
				asOf = *item.EffectiveTo
			}
			quantity := item.QuantityOn(asOf)
			if quantity <= 0 {
				continue
			}

			k := key{item.PlantTypeID, item.SizeSpec, item.UnitPrice.String()}
			if existing, ok := merged[k]; ok {
				existing.Quantity += quantity
				continue
			}
			merged[k] = &Assignment{
				PlantTypeID: item.PlantTypeID,
				PlantName:   item.PlantName,
				SizeSpec:    item.SizeSpec,
				Quantity:    quantity,
				UnitPrice:   item.UnitPrice,
			}
		}
	}

	assignments := make([]Assignment, 0, len(merged))
	for _, a := range merged {
		assignments = append(assignments, *a)
	}
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].PlantName != assignments[j].PlantName {
			return assignments[i].PlantName < assignments[j].PlantName
		}
		if assignments[i].SizeSpec != assignments[j].SizeSpec {
			return assignments[i].SizeSpec < assignments[j].SizeSpec
		}
		if !assignments[i].UnitPrice.Equal(assignments[j].UnitPrice) {
			return assignments[i].UnitPrice.LessThan(assignments[j].UnitPrice)
		}
		return assignments[i].PlantTypeID.String() < assignments[j].PlantTypeID.String()
	})
	return assignments
}
