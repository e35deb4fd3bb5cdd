// Package core holds the record types and the pure ledger arithmetic that
// turns completed sessions and spend logs into a credit balance.
//
// Everything here operates on snapshots passed by the caller and is safe to
// call from any goroutine.
package core

import "time"

// AvailableMinutes is the spendable balance: total earned minus total spent,
// clamped at zero. The clamp is a display rule, not validation — callers
// authorize spends against this value before starting a countdown.
func AvailableMinutes(sessions []EarnedSession, logs []SpendLog) int {
	earned := 0
	for _, s := range sessions {
		earned += s.EarnedMinutes
	}
	spent := 0
	for _, l := range logs {
		spent += l.MinutesUsed
	}
	if earned < spent {
		return 0
	}
	return earned - spent
}

// EarnedMinutesByDay buckets sessions into the calendar day of their end
// date (local start-of-day boundary) and sums earned minutes per day.
func EarnedMinutesByDay(sessions []EarnedSession) map[time.Time]int {
	daily := make(map[time.Time]int)
	for _, s := range sessions {
		daily[StartOfDay(s.EndDate)] += s.EarnedMinutes
	}
	return daily
}

// SpentMinutesByDay buckets spend logs by the calendar day of CreatedAt.
func SpentMinutesByDay(logs []SpendLog) map[time.Time]int {
	daily := make(map[time.Time]int)
	for _, l := range logs {
		daily[StartOfDay(l.CreatedAt)] += l.MinutesUsed
	}
	return daily
}

// ArchiveCutoff returns the instant before which records leave the working
// set: seven calendar days before the reference.
func ArchiveCutoff(reference time.Time) time.Time {
	return reference.AddDate(0, 0, -7)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
