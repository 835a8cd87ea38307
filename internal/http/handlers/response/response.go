package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

// RenderDatabaseError reports a storage failure without leaking the cause.
func RenderDatabaseError(rw http.ResponseWriter, msg string) {
	Render(rw, detailResponse{Detail: fmt.Sprintf("Database error: %s", msg)}, http.StatusInternalServerError)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
