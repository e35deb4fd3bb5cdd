package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldRecordID  = "record_id"
	FieldCategory  = "category"
	FieldMinutes   = "minutes"
	FieldSource    = "source"
	FieldRange     = "range"
	FieldFormat    = "format"
	FieldCutoff    = "cutoff"
	FieldSessions  = "sessions"
	FieldSpendLogs = "spend_logs"
	FieldPath      = "path"
	FieldSuccess   = "success"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentTimer   = "timer"
	ComponentStorage = "storage"
	ComponentArchive = "archive"
	ComponentAMQP    = "amqp"
	ComponentExport  = "export"
	ComponentSheets  = "sheets"
	ComponentWorker  = "worker"
)

// Operations defines standard operation names
const (
	OpRecord   = "record"
	OpSpend    = "spend"
	OpArchive  = "archive"
	OpExport   = "export"
	OpUpload   = "upload"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
