package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"witnessconsole/internal/api"
	"witnessconsole/internal/views"
)

func newBackend(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.NewClient("witnessctl-test", srv.URL+"/api", 5)
}

func TestListAppliesFlags(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"url":"https://b.example","response_code":200},
			{"id":2,"url":"https://a.example","response_code":500},
			{"id":3,"url":"https://a.example/login","response_code":302}
		]`))
	})

	var out bytes.Buffer
	err := run(context.Background(), c, "list", []string{"-status", "success", "-sort", "url"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var rows []api.ListRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 3 || rows[1].ID != 1 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestSubmitSendsDefaults(t *testing.T) {
	var got api.SubmitRequest
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`"Probing started"`))
	})

	var out bytes.Buffer
	if err := run(context.Background(), c, "submit", []string{"https://a.example", " "}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out.String()) != "Probing started" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if len(got.URLs) != 1 || got.Options.Format != "jpeg" || got.Options.Timeout != 60 {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestSubmitWithoutURLs(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})

	err := run(context.Background(), c, "submit", nil, &bytes.Buffer{})
	var fe *views.FormError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormError, got %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	c := api.NewClient("witnessctl-test", "http://127.0.0.1:1/api", 1)

	err := run(context.Background(), c, "frobnicate", nil, &bytes.Buffer{})
	var fe *views.FormError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormError, got %v", err)
	}
}
