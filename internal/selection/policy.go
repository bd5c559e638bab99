// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package selection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStalePolicy is returned for an unrecognized policy name.
var ErrUnknownStalePolicy = errors.New("unknown stale policy")

// StalePolicy decides what happens to selected keys that a refreshed
// catalog or collection no longer contains.
type StalePolicy int

const (
	// StaleKeep leaves stale keys selected. They are ignored by every
	// catalog-scoped count and only go away on Clear.
	StaleKeep StalePolicy = iota
	// StalePrune drops stale keys when fresh data is reconciled.
	StalePrune
)

// ParseStalePolicy parses "keep" or "prune". The empty string means keep.
func ParseStalePolicy(name string) (StalePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "keep":
		return StaleKeep, nil
	case "prune":
		return StalePrune, nil
	default:
		return StaleKeep, fmt.Errorf("%w: %q", ErrUnknownStalePolicy, name)
	}
}

func (p StalePolicy) String() string {
	if p == StalePrune {
		return "prune"
	}

	return "keep"
}
