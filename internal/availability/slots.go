package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// FilterAvailableSlots returns the available slots in their original order.
// The input is not modified; the result is never nil.
func FilterAvailableSlots(slots []domain.Slot) []domain.Slot {
	available := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			available = append(available, s)
		}
	}
	return available
}

// SlotView keeps both lists a slot picker needs: All is rendered (unavailable
// entries disabled), Available decides the empty state.
type SlotView struct {
	All       []domain.Slot
	Available []domain.Slot
}

// NewSlotView copies slots, so later changes to the caller's slice don't leak in
func NewSlotView(slots []domain.Slot) SlotView {
	all := make([]domain.Slot, len(slots))
	copy(all, slots)
	return SlotView{
		All:       all,
		Available: FilterAvailableSlots(all),
	}
}

// IsEmpty returns true if no slot can be selected
func (v SlotView) IsEmpty() bool {
	return len(v.Available) == 0
}

// Find returns the slot starting at startTime from the full list
func (v SlotView) Find(startTime string) (domain.Slot, bool) {
	for _, s := range v.All {
		if s.StartTime.String() == startTime {
			return s, true
		}
	}
	return domain.Slot{}, false
}
