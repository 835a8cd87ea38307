package reminder

import "context"

type CreateInput struct {
	Date      Date
	Time      TimeOfDay
	Message   string
	RemindVia Channel
}

type ReminderRepository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
}
