package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"briefly/briefly/controllers"
	"briefly/briefly/services/loader"
	"briefly/briefly/types"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// SummaryRoutes registers the summarization API
func SummaryRoutes(ctrl *controllers.SummaryController) chi.Router {
	r := chi.NewRouter()

	// GET /styles — the closed set of summary styles for the UI select
	r.Get("/styles", handleJSON(func(r *http.Request) (any, int, error) {
		return []types.SummaryStyle{
			types.StyleBulletPoints,
			types.StyleNumberedList,
			types.StyleParagraph,
		}, http.StatusOK, nil
	}))

	// POST /summarize — ?format=text returns the summary as a
	// downloadable plain-text attachment instead of the JSON payload.
	r.Post("/summarize", func(w http.ResponseWriter, req *http.Request) {
		var sreq types.SummarizeRequest
		if err := json.NewDecoder(req.Body).Decode(&sreq); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := ctrl.Summarize(req.Context(), sreq)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		if req.URL.Query().Get("format") == "text" {
			filename := fmt.Sprintf("summary-%s.txt", uuid.New().String()[:8])
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, resp.Summary)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, controllers.ErrEmptyURL),
		errors.Is(err, controllers.ErrInvalidURL),
		errors.Is(err, controllers.ErrInvalidOptions):
		return http.StatusBadRequest
	case errors.Is(err, loader.ErrNoContent):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
