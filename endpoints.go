package restdown

import (
	"fmt"
	"strings"
)

// endpointMethodWidth is the left-justified field width for the HTTP
// method in formatted endpoint strings ("GET    /a").
const endpointMethodWidth = 6

// ExtractEndpoints derives "METHOD path" strings from level-2 TOC entries.
// Each anchor id is split on its first hyphen. When every entry splits
// into exactly two parts the METHOD-path convention holds and the method
// is left-justified to a fixed width. When any entry fails to split, the
// whole set falls back to the anchor's hyphen-separated fragments joined
// with single spaces.
func ExtractEndpoints(entries []TOCEntry) []string {
	var ids []string
	for _, e := range entries {
		if e.Level == 2 {
			ids = append(ids, e.ID)
		}
	}

	conventional := true
	for _, id := range ids {
		if len(strings.SplitN(id, "-", 2)) != 2 {
			conventional = false
			break
		}
	}

	endpoints := make([]string, 0, len(ids))
	for _, id := range ids {
		if conventional {
			parts := strings.SplitN(id, "-", 2)
			endpoints = append(endpoints, fmt.Sprintf("%-*s %s", endpointMethodWidth, parts[0], parts[1]))
		} else {
			endpoints = append(endpoints, strings.Join(strings.Split(id, "-"), " "))
		}
	}
	return endpoints
}
