// Package sheets uploads the daily stats series to a Google Spreadsheet,
// an optional export target alongside the file sink.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"earntime/internal/stats"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

const statsDateLayout = "2006-01-02"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	statsSheet    string
}

// NewFromEnv creates a Sheets client using environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional: GOOGLE_STATS_SHEET_NAME (default "Stats").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	statsSheet := strings.TrimSpace(os.Getenv("GOOGLE_STATS_SHEET_NAME"))
	if statsSheet == "" {
		statsSheet = "Stats"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		statsSheet:    statsSheet,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials from the environment.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return service, nil
}

// AppendDailyStats replaces the stats sheet contents with the given series:
// a header row plus one [date, earned, spent] row per day.
func (c *Client) AppendDailyStats(ctx context.Context, series []stats.DailyStat) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	values := make([][]any, 0, len(series)+1)
	values = append(values, []any{"date", "earned_minutes", "spent_minutes"})
	for _, stat := range series {
		values = append(values, []any{
			stat.Date.Format(statsDateLayout),
			stat.EarnedMinutes,
			stat.SpentMinutes,
		})
	}

	writeRange := fmt.Sprintf("%s!A1", c.statsSheet)
	vr := &gsheet.ValueRange{Values: values}

	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update stats sheet %s: %w", c.statsSheet, err)
	}

	slog.InfoContext(ctx, "Daily stats uploaded to Google Sheets",
		"spreadsheet_id", c.spreadsheetID,
		"sheet", c.statsSheet,
		"rows", len(series))

	return nil
}
