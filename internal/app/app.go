package app

import (
	"fmt"
	"net/http"
	"remindlater/internal/app/deps"
	"remindlater/internal/app/services"
	createreminder "remindlater/internal/http/handlers/reminders/create_reminder"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/reminders", reminderRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
	}
}
