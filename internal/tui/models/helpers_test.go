// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algolab/algolab/internal/session"
	"github.com/algolab/algolab/internal/testutil"
)

func newTestLoader(service *testutil.MockBenchmarkService) *Loader {
	return NewLoader(context.Background(), session.New(session.DefaultOptions()), service, nil)
}

// collect runs cmd and every command nested in a batch, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, nested := range batch {
			msgs = append(msgs, collect(nested)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

// settle runs cmd, applies load results to the session and feeds them to
// model. It returns the navigation requests cmd produced.
func settle(loader *Loader, model tea.Model, cmd tea.Cmd) []NavigateMsg {
	var navigations []NavigateMsg

	for _, msg := range collect(cmd) {
		if loader.Apply(msg) {
			model.Update(msg)

			continue
		}

		if nav, ok := msg.(NavigateMsg); ok {
			navigations = append(navigations, nav)
		}
	}

	return navigations
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)
