// Package sqlerr classifies PostgreSQL driver errors.
//
// It turns SQLSTATE codes from pgconn.PgError into a small Code enum so the
// repositories can recognise constraint violations (a duplicate username is a
// unique violation on account.username) and the HTTP layer can render a
// friendly message for anything that slips through.
package sqlerr

// Code is a coarse classification of a SQLSTATE.
type Code string

const (
	Other                  Code = "other"
	NotNullViolation       Code = "not_null_violation"
	ForeignKeyViolation    Code = "foreign_key_violation"
	UniqueViolation        Code = "unique_violation"
	CheckViolation         Code = "check_violation"
	ExclusionViolation     Code = "exclusion_violation"
	StringDataTruncation   Code = "string_data_right_truncation"
	NumericValueOutOfRange Code = "numeric_value_out_of_range"
	TooManyConnections     Code = "too_many_connections"
	UndefinedTable         Code = "undefined_table"
)

// MapCode maps a SQLSTATE to a Code. Unknown states map to Other.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22001":
		return StringDataTruncation
	case "22003":
		return NumericValueOutOfRange
	case "53300":
		return TooManyConnections
	case "42P01":
		return UndefinedTable
	default:
		return Other
	}
}

// Severity mirrors the severity field Postgres attaches to every error.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps the raw severity string. Unknown values default to SeverityError.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}

// Error is a driver-independent view of a Postgres error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return string(e.Severity) + ": " + e.Message + " (Code " + string(e.Code) + ": SQLSTATE " + e.DatabaseCode + ")"
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
