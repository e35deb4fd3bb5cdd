package services

import (
	"context"

	"earntime/internal/core"
)

// Store is the persistence collaborator the services orchestrate over.
// *storage.SQLiteRepository satisfies it.
type Store interface {
	InsertSession(ctx context.Context, s core.EarnedSession) error
	InsertSpendLog(ctx context.Context, l core.SpendLog) error
	ListSessions(ctx context.Context, includeArchived bool) ([]core.EarnedSession, error)
	ListSpendLogs(ctx context.Context, includeArchived bool) ([]core.SpendLog, error)
	ArchiveRecords(ctx context.Context, sessionIDs, logIDs []string) error
}

// EventPublisher announces ledger changes to downstream consumers
// (reminder delivery lives outside this module). A nil publisher disables
// events; publish failures are logged, never fatal.
type EventPublisher interface {
	PublishSessionRecorded(ctx context.Context, id string, minutes int) error
	PublishSpendRecorded(ctx context.Context, id string, minutes int) error
	PublishArchiveCompleted(ctx context.Context, sessions, logs int) error
}
