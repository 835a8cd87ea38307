package reminder

import (
	"context"
	"database/sql"
	"path/filepath"
	domain "remindlater/internal/core/domain/reminder"
	"remindlater/internal/db"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	sqlDB *sql.DB
	repo  *SQLiteReminderRepository
}

func (suite *testSuite) SetupTest() {
	sqlDB, err := db.Init(filepath.Join(suite.T().TempDir(), "reminders.db"))
	suite.Require().NoError(err)
	suite.sqlDB = sqlDB
	suite.repo = NewSQLiteReminderRepository(sqlDB)
}

func (suite *testSuite) TearDownTest() {
	suite.sqlDB.Close()
}

func TestSQLiteReminderRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateAssignsSequentialIDs() {
	first, err := s.repo.Create(context.Background(), s.createInput("Pay rent"))
	s.Require().NoError(err)
	second, err := s.repo.Create(context.Background(), s.createInput("Call dentist"))
	s.Require().NoError(err)

	s.Require().Equal(domain.ID(1), first.ID)
	s.Require().Equal(domain.ID(2), second.ID)
}

func (s *testSuite) TestCreateStoresExactText() {
	created, err := s.repo.Create(context.Background(), s.createInput("Pay rent"))
	s.Require().NoError(err)

	var date, timeOfDay, message, remindVia string
	err = s.sqlDB.QueryRow(
		`SELECT date, time, message, remind_via FROM reminders WHERE id = ?`,
		int64(created.ID),
	).Scan(&date, &timeOfDay, &message, &remindVia)
	s.Require().NoError(err)

	s.Require().Equal("2025-03-01", date)
	s.Require().Equal("09:30:00", timeOfDay)
	s.Require().Equal("Pay rent", message)
	s.Require().Equal("email", remindVia)
}

func (s *testSuite) TestCreateAcceptsEmptyMessage() {
	created, err := s.repo.Create(context.Background(), s.createInput(""))
	s.Require().NoError(err)
	s.Require().Equal("", created.Message)

	var count int
	err = s.sqlDB.QueryRow(`SELECT COUNT(*) FROM reminders`).Scan(&count)
	s.Require().NoError(err)
	s.Require().Equal(1, count)
}

func (s *testSuite) createInput(message string) domain.CreateInput {
	date, err := domain.ParseDate("2025-03-01")
	s.Require().NoError(err)
	timeOfDay, err := domain.ParseTimeOfDay("09:30:00")
	s.Require().NoError(err)
	return domain.CreateInput{
		Date:      date,
		Time:      timeOfDay,
		Message:   message,
		RemindVia: domain.ChannelEmail,
	}
}
