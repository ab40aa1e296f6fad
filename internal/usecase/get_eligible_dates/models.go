package get_eligible_dates

import "time"

// Request модель запроса дат для выбора
type Request struct {
	ServiceType string
	From        *time.Time // nil - сегодня; даты раньше сегодняшней сдвигаются на сегодня
	Limit       int        // 0 - значение из конфигурации
	HorizonDays int        // 0 - значение из конфигурации
}

// Response модель ответа с датами
type Response struct {
	ServiceType string
	From        time.Time
	HorizonDays int
	Limit       int
	Dates       []time.Time // по возрастанию, возможно пустой
}
