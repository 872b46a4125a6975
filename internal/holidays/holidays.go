// Package holidays supplies the one input the scheduling core cannot
// produce itself: the set of holiday dates for a given month. It is a
// collaborator in the sense of spec.md §6 — the core never performs I/O.
package holidays

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the day-code production-calendar API the original
// implementation integrates with (isdayoff.ru): one GET request per
// month, a response body of one digit per day, "1" meaning
// weekend-or-holiday.
const DefaultBaseURL = "https://isdayoff.ru/api/getdata"

// DefaultTimeout bounds a single fetch attempt.
const DefaultTimeout = 5 * time.Second

const holidayCode = '1'

// Fetch calls the day-code calendar API for (year, month) and returns the
// set of holiday dates (including weekends the API reports as non-working,
// though callers also apply their own Saturday/Sunday rule independently).
// It follows the teacher's bookowl.Client HTTP-client shape: an owned
// *http.Client with a timeout, NewRequestWithContext, a status-code check,
// and wrapped errors — never a bare http.Get.
func Fetch(ctx context.Context, client *http.Client, baseURL string, year, month int) (map[time.Time]bool, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	url := fmt.Sprintf("%s?year=%d&month=%d&cc=ru", baseURL, year, month)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("holidays: building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holidays: calling production-calendar API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holidays: production-calendar API returned HTTP %d", resp.StatusCode)
	}

	var buf strings.Builder
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("holidays: reading response body: %w", err)
	}
	data := strings.TrimSpace(buf.String())

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if len(data) != daysInMonth {
		return nil, fmt.Errorf("holidays: unexpected response length: wanted %d day codes, got %d", daysInMonth, len(data))
	}

	out := make(map[time.Time]bool)
	for i, code := range data {
		if code == holidayCode {
			out[time.Date(year, time.Month(month), i+1, 0, 0, 0, 0, time.UTC)] = true
		}
	}
	return out, nil
}

// ParseManual parses a fallback comma-separated list of YYYY-MM-DD dates,
// discarding (with a warning) any date outside the target month.
func ParseManual(logger *slog.Logger, raw string, year, month int) (map[time.Time]bool, error) {
	out := make(map[time.Time]bool)
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", field)
		if err != nil {
			return nil, fmt.Errorf("holidays: invalid manual holiday date %q (want YYYY-MM-DD): %w", field, err)
		}
		if int(d.Month()) != month || d.Year() != year {
			if logger != nil {
				logger.Warn("manual holiday outside target month ignored", "date", field)
			}
			continue
		}
		out[time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)] = true
	}
	return out, nil
}

// WeekendOnly is the last-resort fallback: no holidays beyond the
// Saturday/Sunday rule the core already applies on its own, so this
// simply returns an empty set.
func WeekendOnly() map[time.Time]bool {
	return map[time.Time]bool{}
}
