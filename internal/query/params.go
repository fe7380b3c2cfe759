// Package query parses list-endpoint parameters. Unlike intake, this
// boundary is lenient on purpose: malformed values degrade to "filter not
// applied" or a default instead of failing the request.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portfolio-api/internal/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// ListParams is the resolved filter/pagination input for a list request.
// Zero-valued fields mean the corresponding filter is not applied.
type ListParams struct {
	Email string
	Topic string

	// From is the inclusive lower bound; ToExclusive the exclusive upper
	// bound, already advanced to the start of the day after the requested
	// "to" date so that whole day is included.
	From        time.Time
	ToExclusive time.Time

	Limit int64
}

// Parse resolves URL query values into ListParams. It never fails.
func Parse(q url.Values) ListParams {
	p := ListParams{
		Email: strings.TrimSpace(q.Get("email")),
		Topic: strings.TrimSpace(q.Get("topic")),
		Limit: parseLimit(q.Get("limit")),
	}
	if d, ok := parseDay(q.Get("from")); ok {
		p.From = d
	}
	if d, ok := parseDay(q.Get("to")); ok {
		p.ToExclusive = d.AddDate(0, 0, 1)
	}
	return p
}

// parseDay returns midnight UTC of a YYYY-MM-DD value, or ok=false for
// anything malformed.
func parseDay(s string) (time.Time, bool) {
	if !models.IsDateYYYYMMDD(s) {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// parseLimit clamps to [1, MaxLimit] and truncates to an integer,
// defaulting when the value does not parse as a finite number.
func parseLimit(s string) int64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultLimit
	}
	if f < 1 {
		f = 1
	}
	if f > MaxLimit {
		f = MaxLimit
	}
	return int64(f)
}
