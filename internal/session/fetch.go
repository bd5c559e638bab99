// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package session

// LoadState is the lifecycle of one fetched dataset.
type LoadState int

// Load states.
const (
	Idle LoadState = iota
	Loading
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one fetch. Results carrying an outdated ticket are dropped.
type Ticket uint64

// Fetch holds data produced by an external fetch together with its load
// state. Only the most recent Begin can complete it, so at most one fetch is
// in flight per step.
type Fetch[T any] struct {
	state      LoadState
	err        error
	generation Ticket
	data       T
}

// Begin marks a fetch as outstanding and returns its ticket.
func (f *Fetch[T]) Begin() Ticket {
	f.generation++
	f.state = Loading
	f.err = nil

	return f.generation
}

// Complete stores data fetched under ticket, replacing previous data.
// It reports false and changes nothing when ticket is outdated.
func (f *Fetch[T]) Complete(ticket Ticket, data T) bool {
	if ticket != f.generation || f.state != Loading {
		return false
	}

	f.data = data
	f.state = Ready

	return true
}

// Fail records the error of the fetch under ticket.
func (f *Fetch[T]) Fail(ticket Ticket, err error) bool {
	if ticket != f.generation || f.state != Loading {
		return false
	}

	f.err = err
	f.state = Failed

	return true
}

// State returns the load state.
func (f *Fetch[T]) State() LoadState { return f.state }

// Err returns the error of a failed fetch.
func (f *Fetch[T]) Err() error { return f.err }

// Ready reports whether data is loaded and no newer fetch is outstanding.
func (f *Fetch[T]) Ready() bool { return f.state == Ready }

// Loading reports whether a fetch is outstanding.
func (f *Fetch[T]) Loading() bool { return f.state == Loading }

// Data returns the last successfully fetched data.
func (f *Fetch[T]) Data() T { return f.data }

// Reset forgets data and state. Outstanding tickets become outdated.
func (f *Fetch[T]) Reset() {
	var zero T

	f.generation++
	f.state = Idle
	f.err = nil
	f.data = zero
}
