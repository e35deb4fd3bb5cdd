package stats

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleSeries() []DailyStat {
	return []DailyStat{
		{Date: dayAt(2026, 3, 8, 0), EarnedMinutes: 35, SpentMinutes: 15},
		{Date: dayAt(2026, 3, 9, 0), EarnedMinutes: 0, SpentMinutes: 20},
		{Date: dayAt(2026, 3, 10, 0), EarnedMinutes: 25, SpentMinutes: 0},
	}
}

func TestEncodeCSV(t *testing.T) {
	got := EncodeCSV(sampleSeries())
	want := strings.Join([]string{
		"date,earned_minutes,spent_minutes",
		"2026-03-08,35,15",
		"2026-03-09,0,20",
		"2026-03-10,25,0",
	}, "\n")
	if got != want {
		t.Fatalf("csv mismatch:\n%s\n---\n%s", got, want)
	}
}

func TestEncodeCSVEmptySeries(t *testing.T) {
	if got := EncodeCSV(nil); got != "date,earned_minutes,spent_minutes" {
		t.Fatalf("empty series csv = %q", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	original := sampleSeries()
	parsed, err := ParseCSV(EncodeCSV(original))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed) != len(original) {
		t.Fatalf("length %d, want %d", len(parsed), len(original))
	}
	for i := range original {
		if !parsed[i].Date.Equal(original[i].Date) ||
			parsed[i].EarnedMinutes != original[i].EarnedMinutes ||
			parsed[i].SpentMinutes != original[i].SpentMinutes {
			t.Fatalf("row %d: got %+v, want %+v", i, parsed[i], original[i])
		}
	}
}

func TestParseCSVRejectsGarbage(t *testing.T) {
	bads := []string{
		"",
		"date,earned,spent\n2026-03-08,1,2",
		"date,earned_minutes,spent_minutes\nnot-a-date,1,2",
		"date,earned_minutes,spent_minutes\n2026-03-08,one,2",
		"date,earned_minutes,spent_minutes\n2026-03-08,1",
	}
	for i, text := range bads {
		if _, err := ParseCSV(text); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	data, err := EncodeJSON(sampleSeries())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded []struct {
		Date          time.Time `json:"date"`
		EarnedMinutes int       `json:"earnedMinutes"`
		SpentMinutes  int       `json:"spentMinutes"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("decoded %d rows", len(decoded))
	}
	if decoded[0].EarnedMinutes != 35 || decoded[1].SpentMinutes != 20 {
		t.Fatalf("decoded rows wrong: %+v", decoded)
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		r    Range
		f    Format
		want string
	}{
		{Last7Days, FormatCSV, "earn-time-stats-7-days.csv"},
		{Last30Days, FormatJSON, "earn-time-stats-30-days.json"},
		{AllTime, FormatCSV, "earn-time-stats-all-time.csv"},
	}
	for _, tc := range cases {
		if got := Filename(tc.r, tc.f); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if _, err := Encode(nil, Format("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
