package http

import "github.com/glisicmilica/barberline-backend/internal/schedule"

// WorkingDayPayload mirrors schedule.WorkingDay on the wire.
type WorkingDayPayload struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

// VacationPayload mirrors schedule.Vacation on the wire.
type VacationPayload struct {
	Enabled bool   `json:"enabled"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// WorkingHoursPayload is both the request body for updates and the
// response body for reads.
type WorkingHoursPayload struct {
	Days     map[string]WorkingDayPayload `json:"days" binding:"required"`
	Vacation VacationPayload              `json:"vacation"`
}

func (p WorkingHoursPayload) ToDomain() schedule.WorkingHours {
	days := make(map[string]schedule.WorkingDay, len(p.Days))
	for key, day := range p.Days {
		days[key] = schedule.WorkingDay{IsOpen: day.IsOpen, Open: day.Open, Close: day.Close}
	}
	return schedule.WorkingHours{
		Days: days,
		Vacation: schedule.Vacation{
			Enabled: p.Vacation.Enabled,
			From:    p.Vacation.From,
			To:      p.Vacation.To,
		},
	}
}

func NewWorkingHoursPayload(h schedule.WorkingHours) WorkingHoursPayload {
	days := make(map[string]WorkingDayPayload, len(h.Days))
	for key, day := range h.Days {
		days[key] = WorkingDayPayload{IsOpen: day.IsOpen, Open: day.Open, Close: day.Close}
	}
	return WorkingHoursPayload{
		Days: days,
		Vacation: VacationPayload{
			Enabled: h.Vacation.Enabled,
			From:    h.Vacation.From,
			To:      h.Vacation.To,
		},
	}
}
