package response

import "remindlater/internal/core/domain/reminder"

type Reminder struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	RemindVia string `json:"remind_via"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.Date = dr.Date.String()
	r.Time = dr.Time.String()
	r.Message = dr.Message
	r.RemindVia = dr.RemindVia.String()
}
