package reminder

import (
	"context"
	"database/sql"
	"fmt"
	e "remindlater/internal/core/domain/errors"
	"remindlater/internal/core/domain/reminder"
)

type SQLiteReminderRepository struct {
	db *sql.DB
}

func NewSQLiteReminderRepository(db *sql.DB) *SQLiteReminderRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &SQLiteReminderRepository{db: db}
}

func (r *SQLiteReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO reminders (date, time, message, remind_via) VALUES (?, ?, ?, ?)`,
		input.Date.String(),
		input.Time.String(),
		input.Message,
		input.RemindVia.String(),
	)
	if err != nil {
		return rem, fmt.Errorf("insert reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return rem, fmt.Errorf("read inserted reminder id: %w", err)
	}

	rem.ID = reminder.ID(id)
	rem.Date = input.Date
	rem.Time = input.Time
	rem.Message = input.Message
	rem.RemindVia = input.RemindVia
	return rem, nil
}
