package api

import (
	"fmt"
	"net/http"
	"sort"
)

// Operation identifies a backend call by its logical name
type Operation string

const (
	OpPing         Operation = "ping"
	OpStatistics   Operation = "statistics"
	OpWappalyzer   Operation = "wappalyzer"
	OpGallery      Operation = "gallery"
	OpList         Operation = "list"
	OpDetail       Operation = "detail"
	OpTechnology   Operation = "technology"
	OpSearch       Operation = "search"
	OpDelete       Operation = "delete"
	OpSubmit       Operation = "submit"
	OpSubmitSingle Operation = "submit_single"
)

// Shape tells the composer how to treat a response body
type Shape string

const (
	ShapeJSON Shape = "json"
	ShapeText Shape = "text"
)

// Endpoint binds an operation to its method, path template and response shape.
// Path templates may contain :name placeholders.
type Endpoint struct {
	Operation Operation
	Method    string
	Path      string
	Shape     Shape
}

var endpoints = map[Operation]Endpoint{
	OpPing:         {OpPing, http.MethodGet, "/ping", ShapeText},
	OpStatistics:   {OpStatistics, http.MethodGet, "/statistics", ShapeJSON},
	OpWappalyzer:   {OpWappalyzer, http.MethodGet, "/wappalyzer", ShapeJSON},
	OpGallery:      {OpGallery, http.MethodGet, "/results/gallery", ShapeJSON},
	OpList:         {OpList, http.MethodGet, "/results/list", ShapeJSON},
	OpDetail:       {OpDetail, http.MethodGet, "/results/detail/:id", ShapeJSON},
	OpTechnology:   {OpTechnology, http.MethodGet, "/results/technology", ShapeJSON},
	OpSearch:       {OpSearch, http.MethodPost, "/search", ShapeJSON},
	OpDelete:       {OpDelete, http.MethodPost, "/results/delete", ShapeJSON},
	OpSubmit:       {OpSubmit, http.MethodPost, "/submit", ShapeJSON},
	OpSubmitSingle: {OpSubmitSingle, http.MethodPost, "/submit/single", ShapeJSON},
}

// Lookup returns the endpoint registered for op
func Lookup(op Operation) (Endpoint, error) {
	ep, ok := endpoints[op]
	if !ok {
		return Endpoint{}, &OperationError{
			Operation: op,
			Message:   fmt.Sprintf("operation %s not registered", op),
		}
	}
	return ep, nil
}

// Endpoints returns a copy of the registry ordered by operation name
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}

// lookupFor fetches op and checks that it is served by method
func lookupFor(op Operation, method string) (Endpoint, error) {
	ep, err := Lookup(op)
	if err != nil {
		return Endpoint{}, err
	}
	if ep.Method != method {
		return Endpoint{}, &OperationError{
			Operation: op,
			Message:   fmt.Sprintf("operation %s expects %s, not %s", op, ep.Method, method),
		}
	}
	return ep, nil
}
