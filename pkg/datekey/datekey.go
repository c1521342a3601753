package datekey

import (
	"fmt"
	"time"
)

// Layout is the wire format for day keys: fixed-width YYYY-MM-DD, so
// lexical comparison of keys is chronological comparison.
const Layout = "2006-01-02"

// Key identifies a single calendar day. It is the document key for
// calendar notes and the due-date value on tasks.
type Key string

// FromTime returns the key for the calendar day containing t.
func FromTime(t time.Time) Key {
	return Key(t.Format(Layout))
}

// New builds a key from calendar components without validating them.
// Day keys embedded in task text are stored verbatim (e.g. 31 February
// round-trips unchanged), so callers that need a real date must Parse.
func New(year int, month int, day int) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// Parse validates s strictly against Layout and returns it as a Key.
func Parse(s string) (Key, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	// time.Parse accepts e.g. "2025-3-05"; require the canonical form.
	if FromTime(t) != Key(s) {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Key(s), nil
}

// Time returns the midnight instant of the day in UTC.
func (k Key) Time() (time.Time, error) {
	return time.Parse(Layout, string(k))
}

// Before reports whether k is an earlier day than other.
func (k Key) Before(other Key) bool {
	return k < other
}

func (k Key) String() string {
	return string(k)
}
