package day_slots

import (
	"github.com/m04kA/SMC-AppointmentCore/internal/domain"
	"github.com/m04kA/SMC-AppointmentCore/pkg/types"
)

// generateDaySlots генерирует фиксированную сетку слотов календарного дня,
// содержащего day: 26 слотов с шагом 30 минут от 08:00 до 20:30 включительно.
// Время внутри дня у входного значения отбрасывается. Сетка одинакова для
// всех врачей; статусы накладываются потребителем.
func generateDaySlots(day types.DateTime) []types.DateTime {
	first := day.At(domain.GridStartHour, domain.GridStartMinute)
	last := day.At(domain.GridEndHour, domain.GridEndMinute)

	slots := make([]types.DateTime, 0, domain.SlotsPerDay)
	current := first

	for !current.After(last) {
		slots = append(slots, current)
		current = current.AddMinutes(domain.SlotDurationMinutes)
	}

	return slots
}
