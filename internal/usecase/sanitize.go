package usecase

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitizePlain strips all markup and unescapes entities, leaving plain
// text. Applied to every user-supplied free-form string before it is
// stored.
func sanitizePlain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
