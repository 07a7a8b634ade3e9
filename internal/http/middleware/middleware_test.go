package middlewarex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotificationsInstallsNotifier(t *testing.T) {
	var got bool
	h := Notifications(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := Notifier(r.Context())
		got = n != nil
		n.Info("hello")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !got {
		t.Fatal("expected a notifier in the request context")
	}
}

func TestNotifierOutsideRequest(t *testing.T) {
	n := Notifier(context.Background())
	if n != nil {
		t.Fatal("expected nil notifier")
	}
	n.Warning("dropped")
	if len(n.Drain()) != 0 {
		t.Fatal("nil notifier should drain nothing")
	}
}

func TestAccessLogKeepsStatus(t *testing.T) {
	h := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
}
