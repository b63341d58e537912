package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingGateway/internal/domain"
	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// generateSlotLabels генерирует упорядоченный список меток времени начала слотов
// Слоты идут от начала рабочего дня с шагом durationMinutes, пока время начала
// СТРОГО меньше времени закрытия. Последний слот может заканчиваться позже
// закрытия - это сознательно сохраненное поведение календаря: количество
// слотов всегда равно ceil((close-open)/duration)
func generateSlotLabels(openMinutes, closeMinutes, durationMinutes int) ([]types.TimeString, error) {
	if durationMinutes <= 0 || closeMinutes <= openMinutes {
		return []types.TimeString{}, nil
	}

	open, err := types.NewTimeStringFromMinutes(openMinutes)
	if err != nil {
		return nil, err
	}
	closeLabel, err := types.NewTimeStringFromMinutes(closeMinutes)
	if err != nil {
		return nil, err
	}

	labels := make([]types.TimeString, 0, (closeMinutes-openMinutes)/durationMinutes+1)

	for current := open; current.IsBefore(closeLabel); {
		labels = append(labels, current)

		next, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Следующий слот за пределами суток, значит и за временем закрытия
			break
		}
		current = next
	}

	return labels, nil
}

// markAvailability помечает каждый слот как доступный или заблокированный
// Слот заблокирован, если:
//   - выбранная дата - сегодня, и слот начинается не позже текущей минуты
//     (прошедшие И текущая минута блокируются, не только строго прошедшие), ИЛИ
//   - метка слота точно совпадает с занятой меткой из booked
//
// Блокировка по точному совпадению меток: пересечения интервалов разной
// длительности здесь не восстанавливаются - занятые метки в нужной
// гранулярности обязан отдавать booking API
func markAvailability(
	labels []types.TimeString,
	booked domain.BookedTimeSet,
	isToday bool,
	now types.TimeString,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, len(labels))

	for i, label := range labels {
		disabled := isToday && !label.IsAfter(now)

		if !disabled && booked.Contains(label) {
			disabled = true
		}

		slots[i] = domain.TimeSlot{
			Label:    label,
			Disabled: disabled,
		}
	}

	return slots
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
