package stubapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the collection endpoints the client consumes.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.PatchUser).Methods(http.MethodPatch)

	r.HandleFunc("/groups", h.ListGroups).Methods(http.MethodGet)

	r.HandleFunc("/messages", h.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages", h.CreateMessage).Methods(http.MethodPost)

	r.HandleFunc("/tasks", h.ListTasks).Methods(http.MethodGet)

	return r
}
