// Package viewstate holds the filter, sort and pagination state of the list
// views and its mapping to URL query parameters, so every view can be deep
// linked and restored from its URL.
package viewstate

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"witnessconsole/internal/api"
)

// LimitOptions are the page sizes a gallery may use
var LimitOptions = []int{12, 24, 48, 96}

const DefaultLimit = 24

const (
	keyPage         = "page"
	keyLimit        = "limit"
	keyTechnologies = "technologies"
	keyStatus       = "status"
	keyPerception   = "perception"
	keyFailed       = "failed"
)

// Gallery is the query state of the gallery view
type Gallery struct {
	Page         int      `json:"page"`
	Limit        int      `json:"limit"`
	Technologies []string `json:"technologies"`
	Status       []int    `json:"status"`
	Perception   bool     `json:"perception"`
	Failed       bool     `json:"failed"`
}

// DefaultGallery is the state of a gallery URL without parameters
func DefaultGallery() Gallery {
	return Gallery{Page: 1, Limit: DefaultLimit, Failed: true}
}

// DecodeGallery reads gallery state from URL values, falling back to
// defaults for anything missing or malformed.
func DecodeGallery(v url.Values) Gallery {
	g := DefaultGallery()

	if p, err := strconv.Atoi(v.Get(keyPage)); err == nil && p > 0 {
		g.Page = p
	}
	if l, err := strconv.Atoi(v.Get(keyLimit)); err == nil && ValidLimit(l) {
		g.Limit = l
	}

	g.Technologies = splitTechnologies(v.Get(keyTechnologies))
	g.Status = splitStatus(v.Get(keyStatus))

	if b, err := strconv.ParseBool(v.Get(keyPerception)); err == nil {
		g.Perception = b
	}
	g.Failed = v.Get(keyFailed) != "false"

	return g
}

// ValidLimit reports whether l is one of LimitOptions
func ValidLimit(l int) bool {
	for _, o := range LimitOptions {
		if o == l {
			return true
		}
	}
	return false
}

// Encode returns a copy of v with every gallery key rewritten from g.
// Keys the gallery does not own are kept.
func (g Gallery) Encode(v url.Values) url.Values {
	return g.write(v, keyPage, keyLimit, keyTechnologies, keyStatus, keyPerception, keyFailed)
}

// Query converts the state to the backend gallery filters
func (g Gallery) Query() api.GalleryQuery {
	return api.GalleryQuery{
		Page:         g.Page,
		Limit:        g.Limit,
		Technologies: append([]string(nil), g.Technologies...),
		Status:       append([]int(nil), g.Status...),
		Perception:   g.Perception,
		Failed:       g.Failed,
	}
}

// SetPage moves to page without touching any other key
func (g Gallery) SetPage(v url.Values, page int) (Gallery, url.Values) {
	if page < 1 {
		page = 1
	}
	next := g.clone()
	next.Page = page
	return next, next.write(v, keyPage)
}

// SetLimit changes the page size and goes back to the first page
func (g Gallery) SetLimit(v url.Values, limit int) (Gallery, url.Values) {
	if !ValidLimit(limit) {
		limit = DefaultLimit
	}
	next := g.clone()
	next.Limit = limit
	next.Page = 1
	return next, next.write(v, keyLimit, keyPage)
}

// ToggleTechnology adds tech to the filter, or removes it if present
func (g Gallery) ToggleTechnology(v url.Values, tech string) (Gallery, url.Values) {
	next := g.clone()
	tech = strings.TrimSpace(tech)
	if tech != "" {
		next.Technologies = toggle(next.Technologies, tech)
	}
	next.Page = 1
	return next, next.write(v, keyTechnologies, keyPage)
}

// ToggleStatus adds code to the filter, or removes it if present
func (g Gallery) ToggleStatus(v url.Values, code int) (Gallery, url.Values) {
	next := g.clone()
	next.Status = toggle(next.Status, code)
	next.Page = 1
	return next, next.write(v, keyStatus, keyPage)
}

// SetPerception switches grouping by perceptual similarity
func (g Gallery) SetPerception(v url.Values, on bool) (Gallery, url.Values) {
	next := g.clone()
	next.Perception = on
	next.Page = 1
	return next, next.write(v, keyPerception, keyPage)
}

// SetFailed switches whether failed probes are listed
func (g Gallery) SetFailed(v url.Values, show bool) (Gallery, url.Values) {
	next := g.clone()
	next.Failed = show
	next.Page = 1
	return next, next.write(v, keyFailed, keyPage)
}

// HasTechnology reports whether tech is part of the filter
func (g Gallery) HasTechnology(tech string) bool {
	return indexOf(g.Technologies, tech) >= 0
}

// SameTechnologies compares two technology filters ignoring order
func SameTechnologies(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func (g Gallery) clone() Gallery {
	c := g
	c.Technologies = append([]string(nil), g.Technologies...)
	c.Status = append([]int(nil), g.Status...)
	return c
}

// write copies v and rewrites only keys. Default values remove the key.
func (g Gallery) write(v url.Values, keys ...string) url.Values {
	out := url.Values{}
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}

	for _, k := range keys {
		switch k {
		case keyPage:
			setOrDel(out, k, g.Page != 1, strconv.Itoa(g.Page))
		case keyLimit:
			setOrDel(out, k, g.Limit != DefaultLimit, strconv.Itoa(g.Limit))
		case keyTechnologies:
			setOrDel(out, k, len(g.Technologies) > 0, strings.Join(g.Technologies, ","))
		case keyStatus:
			codes := make([]string, len(g.Status))
			for i, c := range g.Status {
				codes[i] = strconv.Itoa(c)
			}
			setOrDel(out, k, len(codes) > 0, strings.Join(codes, ","))
		case keyPerception:
			setOrDel(out, k, g.Perception, "true")
		case keyFailed:
			setOrDel(out, k, !g.Failed, "false")
		}
	}
	return out
}

func setOrDel(v url.Values, key string, set bool, value string) {
	if set {
		v.Set(key, value)
		return
	}
	v.Del(key)
}

func splitTechnologies(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || indexOf(out, part) >= 0 {
			continue
		}
		out = append(out, part)
	}
	return out
}

func splitStatus(raw string) []int {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || indexOf(out, code) >= 0 {
			continue
		}
		out = append(out, code)
	}
	return out
}

// toggle is the symmetric difference of set and {value}
func toggle[T comparable](set []T, value T) []T {
	if i := indexOf(set, value); i >= 0 {
		return append(set[:i:i], set[i+1:]...)
	}
	return append(set, value)
}

func indexOf[T comparable](set []T, value T) int {
	for i, v := range set {
		if v == value {
			return i
		}
	}
	return -1
}
