package domain

// Значения по умолчанию для календаря записи
const (
	DefaultHorizonDays        = 60 // сколько дней вперед просматриваем календарь
	DefaultEligibleDatesLimit = 14 // сколько дат показываем в выборе даты
	DefaultMaxOccurrences     = 52 // максимум повторов одной серии
)

// Ограничения бизнес-валидации
const (
	MaxHorizonDays    = 366
	MaxPeopleCount    = 10
	MaxNotesLength    = 500
	MaxServiceMinutes = 480 // 8 hours
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
