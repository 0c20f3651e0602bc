package model

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const calendarDateLayout = "2006-01-02"

// DateTime is a timestamp as the backend serializes it. Most fields arrive
// as ISO-8601, but some records carry a bare yyyy-MM-dd calendar date, and
// the backend has been seen emitting a Unicode minus sign (U+2212) in the
// timezone offset. Decoding tolerates all three; anything else is an error.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	s = strings.ReplaceAll(s, "−", "-")

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(calendarDateLayout, s)
	if err != nil {
		return fmt.Errorf("model: %q is neither an ISO-8601 timestamp nor a %s date", s, calendarDateLayout)
	}

	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// URL wraps url.URL with the JSON encoding the backend uses for links, such
// as the shipping-label PDF returned by schedule-pickup.
type URL struct {
	url.URL
}

func (u *URL) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("model: invalid url %q: %w", s, err)
	}

	u.URL = *parsed
	return nil
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}
