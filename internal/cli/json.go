package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Global JSON output flag
var jsonOutput bool

// Response is the standard envelope for all structured CLI output.
type Response struct {
	OK       bool        `json:"ok" yaml:"ok"`
	Data     interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string      `json:"code" yaml:"code"`
	Message    string      `json:"message" yaml:"message"`
	Details    interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func validateOutputFormat() error {
	switch strings.ToLower(strings.TrimSpace(outputFormat)) {
	case "", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid --output %q (use text, json or yaml)", outputFormat)
	}
}

// isStructuredOutput returns true if JSON or YAML output is enabled.
func isStructuredOutput() bool {
	return jsonOutput || structuredFormat() != ""
}

func structuredFormat() string {
	switch strings.ToLower(strings.TrimSpace(outputFormat)) {
	case "json":
		return "json"
	case "yaml":
		return "yaml"
	}
	if jsonOutput {
		return "json"
	}
	return ""
}

// outputStructured writes the response in the selected format to stdout.
func outputStructured(resp Response) {
	if structuredFormat() == "yaml" {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		_ = enc.Encode(resp)
		_ = enc.Close()
		return
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful structured response.
func outputSuccess(data interface{}) {
	outputStructured(Response{
		OK:   true,
		Data: data,
	})
}

// outputSuccessWithWarnings outputs a successful structured response with warnings.
func outputSuccessWithWarnings(data interface{}, warnings []Warning) {
	outputStructured(Response{
		OK:       true,
		Data:     data,
		Warnings: warnings,
	})
}

// outputError outputs an error structured response.
func outputError(code, message string, details interface{}, suggestion string) {
	outputStructured(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Details:    details,
			Suggestion: suggestion,
		},
	})
}

// handleError handles an error appropriately based on output mode.
// In structured mode, outputs an error envelope. In text mode, returns the
// error for Execute to print.
func handleError(code string, err error, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), nil, suggestion)
		return errReported
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n\n%s", err, suggestion)
	}
	return err
}

// handleErrorWithDetails handles an error with structured details.
func handleErrorWithDetails(code string, err error, suggestion string, details interface{}) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), details, suggestion)
		return errReported
	}
	return handleError(code, err, suggestion)
}
