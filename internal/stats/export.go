package stats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"

	// csvHeader is a wire contract: external tooling parses it verbatim.
	csvHeader = "date,earned_minutes,spent_minutes"

	csvDateLayout = "2006-01-02"
)

// Format selects an export encoding.
type Format string

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	return string(f)
}

// Filename derives the export file name from the range label, e.g.
// "earn-time-stats-7-days.csv".
func Filename(r Range, f Format) string {
	slug := strings.ReplaceAll(strings.ToLower(r.Label()), " ", "-")
	return fmt.Sprintf("earn-time-stats-%s.%s", slug, f.Extension())
}

// dailyPayload is the JSON shape of one series row.
type dailyPayload struct {
	Date          time.Time `json:"date"`
	EarnedMinutes int       `json:"earnedMinutes"`
	SpentMinutes  int       `json:"spentMinutes"`
}

// EncodeCSV renders the series as delimited text: a fixed header row, then
// one row per day with an ISO calendar date and unquoted integers.
func EncodeCSV(series []DailyStat) string {
	rows := make([]string, 0, len(series)+1)
	rows = append(rows, csvHeader)
	for _, stat := range series {
		rows = append(rows, strings.Join([]string{
			stat.Date.Format(csvDateLayout),
			strconv.Itoa(stat.EarnedMinutes),
			strconv.Itoa(stat.SpentMinutes),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// ParseCSV reads text produced by EncodeCSV back into a series. Dates come
// back at local midnight, matching the day-bucketing used to build them.
func ParseCSV(text string) ([]DailyStat, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if lines[0] != csvHeader {
		return nil, fmt.Errorf("unexpected csv header: %q", lines[0])
	}

	series := make([]DailyStat, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed csv row: %q", line)
		}
		day, err := time.ParseInLocation(csvDateLayout, fields[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", fields[0], err)
		}
		earned, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse earned minutes %q: %w", fields[1], err)
		}
		spent, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parse spent minutes %q: %w", fields[2], err)
		}
		series = append(series, DailyStat{Date: day, EarnedMinutes: earned, SpentMinutes: spent})
	}
	return series, nil
}

// EncodeJSON renders the series as a list of {date, earnedMinutes,
// spentMinutes} records with RFC 3339 dates.
func EncodeJSON(series []DailyStat) ([]byte, error) {
	payload := make([]dailyPayload, len(series))
	for i, stat := range series {
		payload[i] = dailyPayload{
			Date:          stat.Date,
			EarnedMinutes: stat.EarnedMinutes,
			SpentMinutes:  stat.SpentMinutes,
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode daily series: %w", err)
	}
	return data, nil
}

// Encode renders the series in the requested format.
func Encode(series []DailyStat, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return []byte(EncodeCSV(series)), nil
	case FormatJSON:
		return EncodeJSON(series)
	default:
		return nil, fmt.Errorf("unsupported export format: %q", f)
	}
}
