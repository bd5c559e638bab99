// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package handlers implements CLI command execution logic.
package handlers

import (
	"context"
	"time"

	cliAdapter "github.com/algolab/algolab/internal/adapters/cli"
	"github.com/algolab/algolab/internal/console"
	"github.com/algolab/algolab/internal/domain"
)

// BaseHandler provides common functionality for all command handlers.
type BaseHandler struct {
	Console *console.OutputState
	Timeout time.Duration
	Output  domain.OutputPort
}

// NewBaseHandler creates a base handler writing through out. Each service
// call is bounded by timeout when it is positive.
func NewBaseHandler(out *console.OutputState, timeout time.Duration) *BaseHandler {
	return &BaseHandler{
		Console: out,
		Timeout: timeout,
		Output:  cliAdapter.OutputFromFlags(out.Out, out.JSON, out.Quiet),
	}
}

// WithTimeout applies timeout to context if configured.
func (h *BaseHandler) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.Timeout > 0 {
		return context.WithTimeout(ctx, h.Timeout)
	}

	return ctx, func() {}
}

// GetOutput returns the output port for CLI rendering.
func (h *BaseHandler) GetOutput() domain.OutputPort {
	if h.Output == nil {
		h.Output = cliAdapter.OutputFromFlags(h.Console.Out, h.Console.JSON, h.Console.Quiet)
	}

	return h.Output
}

// step runs one service call under the handler timeout, reporting progress
// in verbose mode.
func (h *BaseHandler) step(ctx context.Context, what string, call func(context.Context) error) error {
	h.Console.Progressf("Fetching %s…", what)

	return h.bounded(ctx, call)
}

// bounded runs call under the handler timeout.
func (h *BaseHandler) bounded(ctx context.Context, call func(context.Context) error) error {
	ctx, cancel := h.WithTimeout(ctx)
	defer cancel()

	return call(ctx)
}
