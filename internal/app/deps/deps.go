package deps

import (
	"database/sql"
	"fmt"
	"remindlater/internal/config"
	dl "remindlater/internal/core/domain/logging"
	"remindlater/internal/core/domain/reminder"
	"remindlater/internal/db"
	dbreminder "remindlater/internal/db/reminder"
	"remindlater/internal/implementations/logging"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB *sql.DB

	ReminderRepository reminder.ReminderRepository
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	closeDB := deps.initDatabase()

	deps.ReminderRepository = dbreminder.NewSQLiteReminderRepository(deps.DB)

	return deps, func() {
		closeDB()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

// Fatal on failure: the server must not start with an uninitialized store.
func (deps *Deps) initDatabase() func() {
	sqlDB, err := db.Init(deps.Config.SQLitePath)
	if err != nil {
		panic(fmt.Sprintf("could not initialize the database: %v", err))
	}
	deps.DB = sqlDB
	return func() { sqlDB.Close() }
}
