// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors.
var (
	ErrNotLoaded           = errors.New("data not loaded")
	ErrEmptySelection      = errors.New("nothing selected")
	ErrInvalidPosition     = errors.New("invalid position")
	ErrUnknownMetric       = errors.New("unknown metric")
	ErrInvalidAlgorithmRef = errors.New("invalid algorithm reference")
	ErrUnknownAlgorithm    = errors.New("unknown algorithm")
	ErrNetworkFailure      = errors.New("network failure")
	ErrUnauthorized        = errors.New("unauthorized")
)

// Exit codes following Unix conventions.
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // General errors
	ExitUsageError     = 2  // Invalid arguments/usage
	ExitConfigError    = 3  // Configuration issues
	ExitAuthError      = 4  // Missing or rejected token
	ExitNotFoundError  = 5  // Algorithm or position not found
	ExitNetworkError   = 11 // Service unreachable or failing
	ExitSystemError    = 12 // Filesystem issues
	ExitTimeoutError   = 13 // Request timed out
	ExitInterruptError = 14 // User Ctrl+C interrupt
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

type errorMatcher struct {
	target   error
	patterns []string
	info     ErrorInfo
}

// getErrorMatchers returns the known failure shapes, most specific first.
func getErrorMatchers() []errorMatcher {
	return []errorMatcher{
		{
			target:   ErrUnauthorized,
			patterns: []string{"401", "unauthorized", "token"},
			info: ErrorInfo{
				Message:     "Not authorized",
				Suggestions: []string{"Pass a valid --token or set ALGOLAB_TOKEN"},
			},
		},
		{
			target:   ErrNetworkFailure,
			patterns: []string{"connection refused", "timeout", "no such host", "deadline exceeded"},
			info: ErrorInfo{
				Message:     "Benchmark service unreachable",
				Suggestions: []string{"Check --api-url", "Try again in a few moments"},
			},
		},
		{
			target: ErrInvalidPosition,
			info: ErrorInfo{
				Message:     "Invalid position",
				Suggestions: []string{"Use start, middle, end or a number between 1 and the list size"},
			},
		},
		{
			target: ErrEmptySelection,
			info: ErrorInfo{
				Message:     "Nothing selected",
				Suggestions: []string{"Select at least one algorithm (and one movie for search)"},
			},
		},
		{
			target: ErrUnknownMetric,
			info: ErrorInfo{
				Message:     "Unknown metric",
				Suggestions: []string{"Use one of: time, memory, operations, iterations"},
			},
		},
		{
			target:   ErrUnknownAlgorithm,
			patterns: []string{"not found"},
			info: ErrorInfo{
				Message:     "Algorithm not found",
				Suggestions: []string{"List the catalog: algolab catalog sort"},
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range getErrorMatchers() {
		if errors.Is(err, matcher.target) {
			return withDetails(matcher.info, verbose)
		}

		for _, pattern := range matcher.patterns {
			if strings.Contains(errStr, pattern) {
				return withDetails(matcher.info, verbose)
			}
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

func withDetails(info ErrorInfo, verbose bool) ErrorInfo {
	info.ShowDetails = verbose

	return info
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}
