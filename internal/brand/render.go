package brand

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholder matches %(key)s substitution markers.
var placeholder = regexp.MustCompile(`%\(([^)]+)\)s`)

// Render substitutes %(key)s placeholders in a template with values from
// vars. Every referenced key must be present; a missing key fails with
// ErrMissingKey rather than leaving a literal placeholder behind.
// A doubled %% renders as a literal percent sign.
func Render(tmpl string, vars map[string]string) (string, error) {
	var missing []string
	out := placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		val, ok := vars[key]
		if !ok {
			missing = append(missing, key)
			return m
		}
		return val
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}
	return strings.ReplaceAll(out, "%%", "%"), nil
}
