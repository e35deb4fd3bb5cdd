package amqp

import (
	"testing"
	"time"
)

func TestLedgerEventJSON(t *testing.T) {
	event := &LedgerEvent{
		Kind:       KindSessionRecorded,
		RecordID:   "abc",
		Minutes:    25,
		OccurredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	body, err := event.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := LedgerEventFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind != KindSessionRecorded || decoded.RecordID != "abc" || decoded.Minutes != 25 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if !decoded.OccurredAt.Equal(event.OccurredAt) {
		t.Fatalf("occurred at = %v", decoded.OccurredAt)
	}
}

func TestLedgerEventFromJSONRejectsGarbage(t *testing.T) {
	if _, err := LedgerEventFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error")
	}
}
