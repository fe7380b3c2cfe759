package handler

import (
	"errors"
	"log"
	"net/http"

	"portfolio-api/internal/intake"
	"portfolio-api/internal/query"
	"portfolio-api/internal/service"
)

type SubmissionHandler struct {
	svc *service.SubmissionService
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Submit handles POST intake. Validation failures are client errors with a
// specific reason; store failures surface as an opaque server error.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := readJSON(r, &body); err != nil {
		// An unreadable body behaves like an empty one; the
		// required-field check reports the failure.
		body = map[string]any{}
	}

	id, err := h.svc.Submit(r.Context(), body)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Reason)
			return
		}
		log.Printf("Warning: submit failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "insertedId": id})
}

// List handles GET queries. Malformed parameters never fail the request;
// they degrade to defaults per the lenient parsing rules.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		log.Printf("Warning: list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "items": items})
}
