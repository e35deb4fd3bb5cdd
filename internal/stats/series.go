// Package stats projects the ledger into range-filtered daily series and
// the CSV/JSON payloads the export sinks consume.
package stats

import (
	"sort"
	"time"

	"earntime/internal/core"
)

const (
	Last7Days  Range = "last7Days"
	Last30Days Range = "last30Days"
	AllTime    Range = "allTime"
)

// Range is a time-window filter applied before aggregation.
type Range string

// Label returns the user-facing range name.
func (r Range) Label() string {
	switch r {
	case Last7Days:
		return "7 Days"
	case Last30Days:
		return "30 Days"
	default:
		return "All Time"
	}
}

// CutoffDate returns the inclusive lower bound for the range, or ok=false
// for AllTime. Last7Days spans exactly seven calendar days including the
// reference day.
func (r Range) CutoffDate(reference time.Time) (time.Time, bool) {
	switch r {
	case Last7Days:
		return core.StartOfDay(reference).AddDate(0, 0, -6), true
	case Last30Days:
		return core.StartOfDay(reference).AddDate(0, 0, -29), true
	default:
		return time.Time{}, false
	}
}

// DailyStat is one row of the daily series: minutes earned and spent on a
// single calendar day.
type DailyStat struct {
	Date          time.Time
	EarnedMinutes int
	SpentMinutes  int
}

// FilterSessions keeps sessions whose end date falls inside the range.
func FilterSessions(sessions []core.EarnedSession, r Range, reference time.Time) []core.EarnedSession {
	cutoff, ok := r.CutoffDate(reference)
	if !ok {
		return sessions
	}
	var kept []core.EarnedSession
	for _, s := range sessions {
		if !s.EndDate.Before(cutoff) {
			kept = append(kept, s)
		}
	}
	return kept
}

// FilterSpendLogs keeps logs created inside the range.
func FilterSpendLogs(logs []core.SpendLog, r Range, reference time.Time) []core.SpendLog {
	cutoff, ok := r.CutoffDate(reference)
	if !ok {
		return logs
	}
	var kept []core.SpendLog
	for _, l := range logs {
		if !l.CreatedAt.Before(cutoff) {
			kept = append(kept, l)
		}
	}
	return kept
}

// BuildDailySeries filters both inputs to the range, buckets them by
// calendar day, and returns one row per day that saw any activity, sorted
// ascending. Days with no activity are omitted rather than zero-filled.
func BuildDailySeries(sessions []core.EarnedSession, logs []core.SpendLog, r Range, reference time.Time) []DailyStat {
	earnedByDay := core.EarnedMinutesByDay(FilterSessions(sessions, r, reference))
	spentByDay := core.SpentMinutesByDay(FilterSpendLogs(logs, r, reference))

	days := make(map[time.Time]struct{}, len(earnedByDay)+len(spentByDay))
	for day := range earnedByDay {
		days[day] = struct{}{}
	}
	for day := range spentByDay {
		days[day] = struct{}{}
	}

	series := make([]DailyStat, 0, len(days))
	for day := range days {
		series = append(series, DailyStat{
			Date:          day,
			EarnedMinutes: earnedByDay[day],
			SpentMinutes:  spentByDay[day],
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}
