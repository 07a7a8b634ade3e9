package views

import (
	"context"
	"net/url"

	"witnessconsole/internal/api"
	"witnessconsole/internal/notify"
	"witnessconsole/internal/viewstate"
)

type TablePage struct {
	View  viewstate.TableView `json:"view"`
	Rows  []api.ListRow       `json:"rows"`
	Total int                 `json:"total"`
}

// Table lists every result and applies filter, search and sort locally
func (s *Service) Table(ctx context.Context, n *notify.Notifier, q url.Values) (*TablePage, error) {
	view := viewstate.DecodeTable(q)

	rows, err := s.backend.List(ctx)
	if err != nil {
		n.Error("Failed to load results")
		return nil, &ServiceError{Op: "table", Err: err}
	}

	return &TablePage{
		View:  view,
		Rows:  viewstate.ApplyTable(rows, view),
		Total: len(rows),
	}, nil
}
