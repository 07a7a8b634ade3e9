package middlewarex

import (
	"context"

	"witnessconsole/internal/notify"
)

type ctxKey string

const (
	ctxNotifier ctxKey = "notifier"
)

func WithNotifier(ctx context.Context, n *notify.Notifier) context.Context {
	return context.WithValue(ctx, ctxNotifier, n)
}

// Notifier returns the request's notifier. Outside a request it returns
// nil, which every Notifier method accepts.
func Notifier(ctx context.Context) *notify.Notifier {
	n, _ := ctx.Value(ctxNotifier).(*notify.Notifier)
	return n
}
