package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "remindlater/internal/core/domain/errors"
	"remindlater/internal/core/domain/reminder"
	"remindlater/internal/core/services"
	service "remindlater/internal/core/services/create_reminder"
	"remindlater/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Message   *string `json:"message"`
	RemindVia string  `json:"remind_via"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Date, validation.Required),
		validation.Field(&i.Time, validation.Required),
		validation.Field(&i.Message, validation.NotNil),
		validation.Field(&i.RemindVia, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusUnprocessableEntity)
		return
	}

	date, err := reminder.ParseDate(input.Date)
	if err != nil {
		response.Render(rw, validation.Errors{"date": err}, http.StatusUnprocessableEntity)
		return
	}
	timeOfDay, err := reminder.ParseTimeOfDay(input.Time)
	if err != nil {
		response.Render(rw, validation.Errors{"time": err}, http.StatusUnprocessableEntity)
		return
	}
	remindVia, err := reminder.ParseChannel(input.RemindVia)
	if err != nil {
		response.Render(rw, validation.Errors{"remind_via": err}, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Date:      date,
			Time:      timeOfDay,
			Message:   *input.Message,
			RemindVia: remindVia,
		},
	)
	if err != nil {
		if isExpectedError(err) {
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		response.RenderDatabaseError(rw, "could not save the reminder")
		return
	}

	created := response.Reminder{}
	created.FromDomainType(result.Reminder)
	response.Render(rw, created, http.StatusOK)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, reminder.ErrReminderDateNotSet) ||
		errors.Is(err, reminder.ErrReminderTimeNotSet) ||
		errors.Is(err, reminder.ErrReminderChannelNotSet))
}
