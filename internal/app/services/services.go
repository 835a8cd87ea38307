package services

import (
	"remindlater/internal/app/deps"
	"remindlater/internal/core/services"
	createreminder "remindlater/internal/core/services/create_reminder"
)

type Services struct {
	CreateReminder services.Service[createreminder.Input, createreminder.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		CreateReminder: createreminder.New(
			deps.Logger,
			deps.ReminderRepository,
		),
	}
}
