package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Config errors
	ErrConfigInvalid   = "CONFIG_INVALID"
	ErrConfigKey       = "CONFIG_UNKNOWN_KEY"
	ErrFileWriteError  = "FILE_WRITE_ERROR"
	ErrInvalidTimezone = "INVALID_TIMEZONE"

	// Input errors
	ErrInvalidInput  = "INVALID_INPUT"
	ErrInvalidDate   = "INVALID_DATE"
	ErrInvalidOffset = "INVALID_OFFSET"

	// Pattern errors
	ErrParseFailed = "PARSE_FAILED"
)

// Warning codes for non-fatal issues.
const (
	WarnPrecisionLoss = "PRECISION_LOSS"
)
