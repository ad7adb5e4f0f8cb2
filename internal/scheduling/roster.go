package scheduling

import (
	"sort"

	apperrors "maintenance-scheduler-backend/internal/errors"

	"github.com/google/uuid"
)

// ResolveRoster computes each operator's effective shift for the date.
// An override wins over the operator's default; an override with a nil shift
// takes the operator off the roster; operators with neither are excluded.
// Two override rows for one operator are ambiguous and abort the call.
// Output is sorted by operator code so identical inputs always yield the
// same roster order.
func ResolveRoster(operators []Operator, overrides map[uuid.UUID]Override) ([]RosterEntry, error) {
	roster := make([]RosterEntry, 0, len(operators))
	seen := make(map[uuid.UUID]bool, len(operators))

	for _, op := range operators {
		if seen[op.ID] {
			return nil, apperrors.NewDataIntegrityError("operator %s appears twice in the roster", op.Code)
		}
		seen[op.ID] = true

		shiftID := op.DefaultShiftID
		if override, ok := overrides[op.ID]; ok {
			shiftID = override.ShiftID
		}
		if shiftID == nil {
			continue
		}

		roster = append(roster, RosterEntry{Operator: op, ShiftID: *shiftID})
	}

	sort.Slice(roster, func(i, j int) bool {
		return roster[i].Operator.Code < roster[j].Operator.Code
	})

	return roster, nil
}

// OverridesByOperator indexes override snapshots, rejecting duplicates for
// the same operator as a data-integrity error rather than picking one.
func OverridesByOperator(overrides []Override) (map[uuid.UUID]Override, error) {
	indexed := make(map[uuid.UUID]Override, len(overrides))
	for _, o := range overrides {
		if _, ok := indexed[o.OperatorID]; ok {
			return nil, apperrors.NewDataIntegrityError("operator %s has more than one shift override for the date", o.OperatorID)
		}
		indexed[o.OperatorID] = o
	}
	return indexed, nil
}
