package preview_series

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// reconcile сверяет нужные времена со слотами даты
// Нет слота хотя бы на одно время - DayNoSlot, есть занятый - DaySlotTaken
func reconcile(slots []domain.TimeSlot, serviceType string, times []types.TimeString) domain.DayStatus {
	offered := make(map[types.TimeString]bool, len(slots))
	for i := range slots {
		if !slots[i].IsFor(serviceType) {
			continue
		}
		offered[slots[i].Time] = offered[slots[i].Time] || slots[i].Available
	}

	taken := false
	for _, t := range times {
		available, ok := offered[t]
		if !ok {
			return domain.DayNoSlot
		}
		if !available {
			taken = true
		}
	}

	if taken {
		return domain.DaySlotTaken
	}
	return domain.DayAvailable
}
