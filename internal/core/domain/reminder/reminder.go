package reminder

type ID int64

type Reminder struct {
	ID        ID
	Date      Date
	Time      TimeOfDay
	Message   string
	RemindVia Channel
}
