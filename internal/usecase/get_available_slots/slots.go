package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// generateSlots строит список свободных слотов по графику мастера
// Сетка полчасовая, от начала рабочего дня до его конца (конец не включается).
// Слот пропускается, если его начало попадает в перерыв или слот уже занят
func generateSlots(schedule domain.MasterSchedule, booked map[string]struct{}) []string {
	slots := make([]string, 0)

	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for minute := 0; minute < 60; minute += domain.SlotStepMinutes {
			fractional := float64(hour) + float64(minute)/60.0
			if schedule.Break != nil && schedule.Break.Contains(fractional) {
				continue
			}

			slot := fmt.Sprintf("%02d:%02d", hour, minute)
			if _, taken := booked[slot]; taken {
				continue
			}

			slots = append(slots, slot)
		}
	}

	return slots
}
