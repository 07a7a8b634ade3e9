package handlers

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
)

// Screenshots proxies /screenshots/* to the backend's screenshot store so
// the browser only ever talks to the console.
func Screenshots(base string) (http.Handler, error) {
	target, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("screenshot base url: %w", err)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			// cleaned as rooted so ".." cannot climb above the screenshot store
			name := path.Clean("/" + strings.TrimPrefix(pr.In.URL.Path, "/screenshots/"))
			pr.Out.URL.Path = target.Path + name
			pr.Out.URL.RawPath = ""
			pr.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("screenshot proxy failed")
			http.Error(w, "screenshot unavailable", http.StatusBadGateway)
		},
	}
	return proxy, nil
}
