package listview

import "strings"

// AllTypes disables the categorical filter.
const AllTypes = "all"

// Query narrows the loaded items on the client. It never reaches the server.
type Query struct {
	Search string
	Type   string
}

func (q Query) empty() bool {
	return strings.TrimSpace(q.Search) == "" && (q.Type == "" || q.Type == AllTypes)
}

// Filter keeps the items whose fields contain the search term, ignoring case,
// and whose type equals the query type. A nil fields or typeOf func disables
// that part of the query.
func Filter[T any](items []T, q Query, fields func(T) []string, typeOf func(T) string) []T {
	out := make([]T, 0, len(items))
	if q.empty() {
		return append(out, items...)
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, item := range items {
		if typeOf != nil && q.Type != "" && q.Type != AllTypes && typeOf(item) != q.Type {
			continue
		}
		if term != "" && !matches(item, term, fields) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches[T any](item T, term string, fields func(T) []string) bool {
	if fields == nil {
		return true
	}
	for _, f := range fields(item) {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
