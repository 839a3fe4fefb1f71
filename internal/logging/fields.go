package logging

import "log/slog"

// Common structured log field keys.
const (
	FieldCommand  = "command"
	FieldVersion  = "version"
	FieldConfig   = "config"
	FieldLocation = "location"
	FieldPattern  = "pattern"
	FieldInput    = "input"
	FieldInstant  = "instant"
	FieldDays     = "days"
	FieldError    = "error"
)

// WithCommon appends command/version fields when provided.
func WithCommon(attrs []slog.Attr, command, version string) []slog.Attr {
	if command != "" {
		attrs = append(attrs, slog.String(FieldCommand, command))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
