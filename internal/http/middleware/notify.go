package middlewarex

import (
	"net/http"

	"witnessconsole/internal/notify"
)

// Notifications gives every request its own notifier
func Notifications(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithNotifier(r.Context(), notify.New())))
	})
}
