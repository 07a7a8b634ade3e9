package api

import (
	"net/url"
	"strings"
)

// ScreenshotURL returns where a result's screenshot can be loaded from.
// Inlined screenshots become data URLs; otherwise filename is joined to base.
func ScreenshotURL(base, filename, inline string) string {
	if inline != "" {
		return "data:" + imageMIME(filename) + ";base64," + inline
	}
	if filename == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(filename)
}

func imageMIME(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
