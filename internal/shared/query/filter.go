// Package query translates raw list-query parameters into MongoDB filter
// documents. It is storage-facing but side-effect free.
package query

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pagination controls are never filters.
var ignoredKeys = map[string]struct{}{
	"page":  {},
	"limit": {},
	"sort":  {},
	"order": {},
}

var dateLayouts = []string{
	"2006",
	"2006-01",
	"2006-01-02",
	time.RFC3339,
}

// Build turns a query-parameter mapping into a bson.M filter. Per key, first
// match wins:
//  1. pagination keys are ignored
//  2. nil and empty-string values emit nothing
//  3. keys ending in "id" are reference fields: the suffix is stripped and the
//     raw value matched exactly
//  4. keys containing "date" match their raw value exactly
//  5. string values that look like a calendar date match the parsed date;
//     other strings become a case-insensitive substring regex on the trimmed
//     value
//  6. anything else matches exactly
//
// Keys are visited in sorted order, so the result is deterministic; if two
// keys resolve to the same target field the lexicographically later one wins.
func Build(params map[string]any) bson.M {
	filter := bson.M{}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := params[key]

		if _, ignored := ignoredKeys[key]; ignored {
			continue
		}
		if value == nil {
			continue
		}
		str, isString := value.(string)
		if isString && str == "" {
			continue
		}

		lower := strings.ToLower(key)
		switch {
		case strings.HasSuffix(lower, "id"):
			filter[key[:len(key)-2]] = value
		case strings.Contains(lower, "date"):
			filter[key] = value
		case isString:
			if t, ok := ParseDate(str); ok {
				filter[key] = t
			} else {
				filter[key] = primitive.Regex{Pattern: strings.TrimSpace(str), Options: "i"}
			}
		default:
			filter[key] = value
		}
	}

	return filter
}

// ParseDate reports whether s is date-like and returns the parsed calendar
// date if so.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
