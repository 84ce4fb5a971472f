// Package pagination implements the keyset-page windowing shared by every
// list fetcher: query one row beyond the requested page size, then trim the
// extra row off while recording whether it existed.
package pagination

// Window is the limit to query for a requested page size. One extra row is
// fetched to detect a following page. A zero (or negative) take still probes
// with a window of 1 so the caller issues a well-formed query, but Trim will
// discard whatever comes back.
func Window(take int) int {
	if take <= 0 {
		return 1
	}
	return take + 1
}

// Trim cuts a raw result set fetched with Window(take) down to the page that
// is actually returned, and reports whether a next page exists.
//
// A take of zero always yields an empty page and hasNext=false: there is no
// well-defined "next" when the requested page size is zero, even if the probe
// row came back.
func Trim[T any](items []T, take int) ([]T, bool) {
	if take <= 0 {
		return []T{}, false
	}
	if len(items) > take {
		return items[:take], true
	}
	return items, false
}
