package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	middlewarex "witnessconsole/internal/http/middleware"
	"witnessconsole/internal/views"
)

// Dashboard handles the dashboard summary
func Dashboard(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context(), middlewarex.Notifier(r.Context()))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, d)
	}
}

// Gallery handles the screenshot gallery; query parameters carry the view state
func Gallery(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.Gallery(r.Context(), middlewarex.Notifier(r.Context()), r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, page)
	}
}

func Table(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.Table(r.Context(), middlewarex.Notifier(r.Context()), r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, page)
	}
}

func Detail(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.Detail(r.Context(), middlewarex.Notifier(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, page)
	}
}

func DeleteResult(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), middlewarex.Notifier(r.Context()), id); err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, map[string]string{"deleted": id})
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

func Search(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := decodeBody(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		page, err := svc.Search(r.Context(), middlewarex.Notifier(r.Context()), req.Query)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, page)
	}
}

func Submit(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form views.SubmitForm
		if err := decodeBody(r, &form); err != nil {
			respondError(w, r, err)
			return
		}

		res, err := svc.Submit(r.Context(), middlewarex.Notifier(r.Context()), form)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, res)
	}
}

// Submissions lists recorded submissions, newest first
func Submissions(svc *views.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		subs, err := svc.Submissions(r.Context(), limit)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, subs)
	}
}
