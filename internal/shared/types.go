package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component, serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// DateOf drops the clock and location of t, keeping its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("date must be a string in YYYY-MM-DD format")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Pagination defaults for list endpoints.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is an offset/limit window over a list query.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns skip=0, limit=10.
func DefaultPage() Page {
	return Page{Skip: DefaultSkip, Limit: DefaultLimit}
}

var ErrInvalidPage = errors.New("skip and limit must be non-negative")

// Normalize rejects negative values and caps Limit at MaxLimit.
func (p Page) Normalize() (Page, error) {
	if p.Skip < 0 || p.Limit < 0 {
		return p, ErrInvalidPage
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p, nil
}
