package domain

import "strings"

// Aliases ranks the fallback keys tried when a tenant configures no explicit
// path for a field. Order matters: the first present key wins. The tables are
// part of the mapping contract and must stay stable across releases.
var Aliases = map[string][]string{
	"id":        {"id", "_id", "uuid", "pk", "uId"},
	"name":      {"name", "title", "label", "display_name", "fileName", "carName"},
	"image":     {"image", "img", "photo", "thumbnail", "pic", "carImage"},
	"url":       {"url", "link", "href", "website"},
	"price":     {"price", "amount", "cost", "rate", "value"},
	"startDate": {"startDate", "start", "from", "reservationDate", "checkIn"},
	"endDate":   {"endDate", "end", "to", "checkOut"},
	"unitId":    {"unitId", "resourceId", "itemId", "carId", "refId"},
	"status":    {"status", "state", "availability", "confirmed"},
}

// Resolve walks a dot-separated path (e.g. "attributes.price.amount") through
// nested maps. It returns nil as soon as any segment is missing, null, or not
// an object; missing data is never an error at this level.
func Resolve(record map[string]any, path string) any {
	if len(record) == 0 || path == "" {
		return nil
	}
	var current any = record
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := node[segment]
		if !exists || value == nil {
			return nil
		}
		current = value
	}
	return current
}

// ResolveByAlias tries each alias against the top level of the record only and
// returns the value of the first key present, even when that value is null.
// Ties break by list order; a present null never falls through to a later
// alias.
func ResolveByAlias(record map[string]any, aliases []string) any {
	if len(record) == 0 {
		return nil
	}
	for _, alias := range aliases {
		if value, ok := record[alias]; ok {
			return value
		}
	}
	return nil
}

// ResolveField applies the precedence contract: an explicit configured path
// always wins; alias guessing is the fallback when the path is unset or
// resolves to nothing.
func ResolveField(record map[string]any, path string, aliases []string) any {
	if value := Resolve(record, path); value != nil {
		return value
	}
	return ResolveByAlias(record, aliases)
}
