package viewstate

import (
	"cmp"
	"net/url"
	"sort"
	"strings"

	"witnessconsole/internal/api"
)

// FilterStatus narrows the table to a class of responses
type FilterStatus string

const (
	FilterAll     FilterStatus = "all"
	FilterSuccess FilterStatus = "success"
	FilterError   FilterStatus = "error"
)

// ParseFilterStatus maps unknown values to FilterAll
func ParseFilterStatus(s string) FilterStatus {
	switch FilterStatus(strings.ToLower(strings.TrimSpace(s))) {
	case FilterSuccess:
		return FilterSuccess
	case FilterError:
		return FilterError
	default:
		return FilterAll
	}
}

type SortColumn string

const (
	SortNone          SortColumn = ""
	SortID            SortColumn = "id"
	SortURL           SortColumn = "url"
	SortTitle         SortColumn = "title"
	SortResponseCode  SortColumn = "response_code"
	SortContentLength SortColumn = "content_length"
	SortProtocol      SortColumn = "protocol"
)

// ParseSortColumn maps unknown columns to SortNone
func ParseSortColumn(s string) SortColumn {
	switch c := SortColumn(s); c {
	case SortID, SortURL, SortTitle, SortResponseCode, SortContentLength, SortProtocol:
		return c
	default:
		return SortNone
	}
}

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// TableSort is the active sort of the table view. It lives on the client
// only and is never written back to the URL.
type TableSort struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// Click returns the sort after a header click: the active column flips
// direction, any other column becomes active ascending.
func (s TableSort) Click(column SortColumn) TableSort {
	if s.Column == column && column != SortNone {
		if s.Direction == Asc {
			return TableSort{Column: column, Direction: Desc}
		}
		return TableSort{Column: column, Direction: Asc}
	}
	return TableSort{Column: column, Direction: Asc}
}

// TableView is everything that shapes the rows shown in the table
type TableView struct {
	Filter FilterStatus `json:"filter"`
	Search string       `json:"search"`
	Sort   TableSort    `json:"sort"`
}

// DecodeTable reads a table view from request parameters
func DecodeTable(v url.Values) TableView {
	view := TableView{
		Filter: ParseFilterStatus(v.Get("status")),
		Search: strings.TrimSpace(v.Get("q")),
	}
	if col := ParseSortColumn(v.Get("sort")); col != SortNone {
		view.Sort = TableSort{Column: col, Direction: Asc}
		if v.Get("dir") == string(Desc) {
			view.Sort.Direction = Desc
		}
	}
	return view
}

// ApplyTable filters by status, then by search term, then sorts. The input
// slice is not modified.
func ApplyTable(rows []api.ListRow, view TableView) []api.ListRow {
	term := strings.ToLower(view.Search)

	out := make([]api.ListRow, 0, len(rows))
	for _, r := range rows {
		if !matchesStatus(r, view.Filter) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.URL), term) &&
			!strings.Contains(strings.ToLower(r.Title), term) {
			continue
		}
		out = append(out, r)
	}

	if view.Sort.Column == SortNone {
		return out
	}

	less := comparator(view.Sort.Column)
	sort.SliceStable(out, func(i, j int) bool {
		if view.Sort.Direction == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func matchesStatus(r api.ListRow, f FilterStatus) bool {
	switch f {
	case FilterSuccess:
		return !r.Failed && r.ResponseCode >= 200 && r.ResponseCode < 400
	case FilterError:
		return r.Failed || r.ResponseCode >= 400
	default:
		return true
	}
}

func comparator(col SortColumn) func(a, b api.ListRow) bool {
	switch col {
	case SortID:
		return func(a, b api.ListRow) bool { return a.ID < b.ID }
	case SortURL:
		return func(a, b api.ListRow) bool { return lowerLess(a.URL, b.URL) }
	case SortTitle:
		return func(a, b api.ListRow) bool { return lowerLess(a.Title, b.Title) }
	case SortResponseCode:
		return func(a, b api.ListRow) bool { return a.ResponseCode < b.ResponseCode }
	case SortContentLength:
		return func(a, b api.ListRow) bool { return a.ContentLength < b.ContentLength }
	case SortProtocol:
		return func(a, b api.ListRow) bool { return lowerLess(a.Protocol, b.Protocol) }
	default:
		return func(a, b api.ListRow) bool { return false }
	}
}

func lowerLess(a, b string) bool {
	return cmp.Less(strings.ToLower(a), strings.ToLower(b))
}
