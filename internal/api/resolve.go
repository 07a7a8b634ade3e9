package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Params carries path and query parameters for a call. Keys consumed by
// path placeholders are not sent in the query string.
type Params map[string]any

var placeholder = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// Resolve substitutes every :name placeholder in template with the escaped
// value of params[name]. It returns the resolved path and a copy of params
// without the consumed keys; params itself is left untouched.
func Resolve(template string, params Params) (string, Params, error) {
	remaining := make(Params, len(params))
	for k, v := range params {
		remaining[k] = v
	}

	var missing []string
	seen := make(map[string]bool)

	resolved := placeholder.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1:]
		value, ok := lookupParam(params, name)
		if !ok {
			if !seen[name] {
				missing = append(missing, name)
				seen[name] = true
			}
			return token
		}
		delete(remaining, name)
		return url.PathEscape(value)
	})

	if len(missing) > 0 {
		return "", nil, &MissingParameterError{Template: template, Missing: missing}
	}
	return resolved, remaining, nil
}

// lookupParam treats nil and empty values as absent
func lookupParam(params Params, name string) (string, bool) {
	v, ok := params[name]
	if !ok || v == nil {
		return "", false
	}
	s := stringify(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// SerializeQuery builds a canonical query string (sorted keys) from params.
// An empty set yields "" rather than a bare "?".
func SerializeQuery(params Params) string {
	values := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		values.Set(k, stringify(v))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// stringify renders a parameter value. Slices are comma joined, which is
// how the backend reads list filters.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		return strings.Join(t, ",")
	case []int:
		parts := make([]string, len(t))
		for i, n := range t {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
