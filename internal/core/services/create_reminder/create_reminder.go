package createreminder

import (
	"context"
	e "remindlater/internal/core/domain/errors"
	"remindlater/internal/core/domain/logging"
	"remindlater/internal/core/domain/reminder"
	"remindlater/internal/core/services"
)

type Input struct {
	Date      reminder.Date
	Time      reminder.TimeOfDay
	Message   string
	RemindVia reminder.Channel
}

func (i Input) Validate() error {
	if !i.Date.IsValid() {
		return reminder.ErrReminderDateNotSet
	}
	if !i.Time.IsValid() {
		return reminder.ErrReminderTimeNotSet
	}
	if !i.RemindVia.IsKnown() {
		return reminder.ErrReminderChannelNotSet
	}
	return nil
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = input.Validate()
	if err != nil {
		return result, err
	}

	createdReminder, err := s.reminderRepository.Create(
		ctx,
		reminder.CreateInput{
			Date:      input.Date,
			Time:      input.Time,
			Message:   input.Message,
			RemindVia: input.RemindVia,
		},
	)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminder", createdReminder),
	)
	result.Reminder = createdReminder
	return result, nil
}
