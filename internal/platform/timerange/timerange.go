package timerange

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidRange = errors.New("begin and end are required RFC 3339 timestamps and begin must not be after end")

const dateOnly = "2006-01-02"

type Range struct {
	Begin time.Time
	End   time.Time
}

// Parse menerima RFC 3339 atau tanggal saja (YYYY-MM-DD). Tanggal saja pada end
// berarti sampai akhir hari tsb (UTC).
func Parse(begin, end string) (Range, error) {
	b, err := parse(begin, false)
	if err != nil {
		return Range{}, err
	}
	e, err := parse(end, true)
	if err != nil {
		return Range{}, err
	}
	if b.After(e) {
		return Range{}, ErrInvalidRange
	}
	return Range{Begin: b, End: e}, nil
}

func parse(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidRange
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidRange
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
