package domain

import "github.com/m04kA/SMC-BookingGateway/pkg/types"

// TimeSlot кандидат на время начала записи в календаре
// Эфемерный объект: пересчитывается при смене даты, услуги или набора занятых слотов
type TimeSlot struct {
	Label    types.TimeString // время начала, "HH:MM"
	Disabled bool             // слот нельзя выбрать (прошел или занят)
}

// BookedTimeSet набор занятых меток времени "HH:MM" для пары (услуга, дата)
// Снимок, полученный от booking API; не синхронизируется непрерывно
type BookedTimeSet map[types.TimeString]struct{}

// NewBookedTimeSet строит набор из списка меток
// Некорректные метки пропускаются: авторитетный источник - внешний API,
// и одна битая запись не должна ломать весь календарь
func NewBookedTimeSet(labels []string) BookedTimeSet {
	set := make(BookedTimeSet, len(labels))
	for _, label := range labels {
		ts, err := types.NewTimeStringFromString(label)
		if err != nil {
			continue
		}
		set[ts] = struct{}{}
	}
	return set
}

// Contains возвращает true, если метка занята (точное строковое совпадение)
func (s BookedTimeSet) Contains(label types.TimeString) bool {
	_, ok := s[label]
	return ok
}
