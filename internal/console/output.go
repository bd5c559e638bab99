// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes command results to stdout and diagnostics to stderr.
package console

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/term"
)

// ColorMode selects when ANSI styling is emitted.
type ColorMode string

// Color modes accepted by --color.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a --color value. The empty string means auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(value)); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q (use auto, always or never)", value)
	}
}

// OutputState holds output configuration for one command run.
type OutputState struct {
	Verbose bool
	Quiet   bool
	JSON    bool
	Plain   bool
	Color   ColorMode

	Out io.Writer
	Err io.Writer

	getenv func(string) string
}

// NewOutput returns an OutputState writing to stdout and stderr.
func NewOutput() *OutputState {
	return &OutputState{
		Color:  ColorAuto,
		Out:    os.Stdout,
		Err:    os.Stderr,
		getenv: os.Getenv,
	}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, quiet, json, plain bool) {
	o.Verbose = verbose
	o.Quiet = quiet
	o.JSON = json
	o.Plain = plain
}

// IsTTY checks if w is a terminal (not piped/redirected).
func (o *OutputState) IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled reports whether ANSI styling should be written to stdout.
func (o *OutputState) Styled() bool {
	if o.JSON || o.Plain {
		return false
	}

	switch o.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// no-color.org
	if o.env("NO_COLOR") != "" || o.env("TERM") == "dumb" {
		return false
	}

	return o.IsTTY(o.stdout())
}

// Bold formats text with bold when styled, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON || o.Plain {
		return text
	}

	if o.Styled() {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// Header formats section headers consistently.
func (o *OutputState) Header(text string) string {
	return o.Bold(text)
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.Quiet && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not quiet, JSON or plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.Quiet && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (suppressed by quiet).
func (o *OutputState) Warningf(format string, args ...any) {
	switch {
	case o.Quiet:
	case o.Plain:
		_, _ = fmt.Fprintf(o.stderr(), "warning: "+format+"\n", args...)
	default:
		_, _ = fmt.Fprintf(o.stderr(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "error: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "✗ "+format+"\n", args...)
	}
}

// Result writes command results to stdout.
func (o *OutputState) Result(data any) {
	_, _ = fmt.Fprintf(o.stdout(), "%v\n", data)
}

// WriteJSON writes v as indented JSON to stdout.
func (o *OutputState) WriteJSON(v any) error {
	encoder := json.NewEncoder(o.stdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}

	return nil
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	if err := json.NewEncoder(o.stdout()).Encode(result); err != nil {
		_, _ = fmt.Fprintf(o.stderr(), "error encoding JSON: %v\n", err)
	}
}

// ErrorResult reports err on stderr and, in JSON mode, as a result object.
func (o *OutputState) ErrorResult(err error, code int) {
	if o.JSON {
		o.JSONResult("error", map[string]any{
			"error": err.Error(),
			"code":  code,
		})
	}

	o.Errorf("%s", err.Error())
}

// PlainKeyValue outputs key:value pairs for machine parsing.
func (o *OutputState) PlainKeyValue(key, value string) {
	_, _ = fmt.Fprintf(o.stdout(), "%s:%s\n", key, value)
}

// PlainList outputs a simple list of items, one per line.
func (o *OutputState) PlainList(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(o.stdout(), "%s\n", item)
	}
}

func (o *OutputState) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}

	return o.Out
}

func (o *OutputState) stderr() io.Writer {
	if o.Err == nil {
		return os.Stderr
	}

	return o.Err
}

func (o *OutputState) env(key string) string {
	if o.getenv == nil {
		return os.Getenv(key)
	}

	return o.getenv(key)
}
