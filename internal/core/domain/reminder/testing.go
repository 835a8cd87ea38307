package reminder

import (
	"context"
	"sync"
)

type TestReminderRepository struct {
	CreateError error
	Created     []CreateInput
	lastID      ID
	lock        sync.Mutex
}

func NewTestReminderRepository() *TestReminderRepository {
	return &TestReminderRepository{}
}

func (r *TestReminderRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Created = append(r.Created, input)
	r.lastID++
	rem.ID = r.lastID
	rem.Date = input.Date
	rem.Time = input.Time
	rem.Message = input.Message
	rem.RemindVia = input.RemindVia
	return rem, nil
}
