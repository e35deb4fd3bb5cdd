package amqp

import (
	"encoding/json"
	"time"
)

const (
	KindSessionRecorded  = "session_recorded"
	KindSpendRecorded    = "spend_recorded"
	KindArchiveCompleted = "archive_completed"
)

// LedgerEvent is the message published when the ledger changes. Reminder
// and notification delivery consume these; the ledger itself never waits
// on them.
type LedgerEvent struct {
	Kind       string    `json:"kind"`
	RecordID   string    `json:"record_id,omitempty"`
	Minutes    int       `json:"minutes,omitempty"`
	Sessions   int       `json:"sessions,omitempty"`
	SpendLogs  int       `json:"spend_logs,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToJSON converts the event to JSON bytes.
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON creates an event from JSON bytes.
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
