package reminder

import "errors"

var (
	ErrParseDate      = errors.New("date must be a calendar date in YYYY-MM-DD format")
	ErrParseTimeOfDay = errors.New("time must be a time of day in HH:MM:SS format")
	ErrParseChannel   = errors.New("remind_via must be one of: email, sms, push_notification")

	ErrReminderDateNotSet    = errors.New("reminder date is not set")
	ErrReminderTimeNotSet    = errors.New("reminder time is not set")
	ErrReminderChannelNotSet = errors.New("reminder delivery channel is not set")
)
