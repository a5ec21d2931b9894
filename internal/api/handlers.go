// Package api exposes HTTP handlers for the school activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"example.com/schoolactivities/internal/domain"
	"example.com/schoolactivities/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. Activity names are path-embedded
// and may contain spaces, so routes use wildcards and PathValue for decoding.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", root)
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.unregister)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root sends browsers to the static front-end entry page.
func root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for _, activity := range activities {
		resp[activity.Name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		observability.RecordRejection("missing_email")
		writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	if err := h.service.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("activity_not_found")
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			observability.RecordRejection("duplicate_signup")
			writeError(w, http.StatusBadRequest, "Student already signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordSignup()
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%s signed up for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		observability.RecordRejection("missing_email")
		writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("activity_not_found")
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrNotSignedUp):
			observability.RecordRejection("not_signed_up")
			writeError(w, http.StatusBadRequest, "Student not signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordUnregistration()
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%s unregistered from %s", email, name),
	})
}

// ActivityView is the wire representation of one activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse confirms a successful signup or unregistration.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the human-readable failure detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
