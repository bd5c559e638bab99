// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package window

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/algolab/algolab/internal/domain"
)

// Anchor names the kind of jump target.
type Anchor int

// Jump anchors.
const (
	AnchorPosition Anchor = iota
	AnchorStart
	AnchorMiddle
	AnchorEnd
)

// Target is a "jump to" request. Position is 1-based, as typed by the user,
// and only meaningful for AnchorPosition.
type Target struct {
	Anchor   Anchor
	Position int
}

// Start targets the first row.
func Start() Target { return Target{Anchor: AnchorStart} }

// Middle targets the middle of the list.
func Middle() Target { return Target{Anchor: AnchorMiddle} }

// End targets the last row.
func End() Target { return Target{Anchor: AnchorEnd} }

// Position targets the 1-based row position.
func Position(position int) Target {
	return Target{Anchor: AnchorPosition, Position: position}
}

func (t Target) String() string {
	switch t.Anchor {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return strconv.Itoa(t.Position)
	}
}

// ParseTarget parses "start", "middle", "end" or a 1-based position.
// Range checks against the list size happen in JumpToPosition.
func ParseTarget(input string) (Target, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	switch trimmed {
	case "start", "first", "top":
		return Start(), nil
	case "middle", "mid":
		return Middle(), nil
	case "end", "last", "bottom":
		return End(), nil
	}

	position, err := strconv.Atoi(trimmed)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidPosition, input)
	}

	return Position(position), nil
}

// JumpToPosition returns the scroll offset that brings target into view.
// Positions are centered in the viewport rather than pinned to the top.
// A position outside [1, TotalCount] is rejected with domain.ErrInvalidPosition.
func JumpToPosition(s State, target Target) (float64, error) {
	switch target.Anchor {
	case AnchorStart:
		return 0, nil
	case AnchorEnd:
		return s.MaxScrollOffset(), nil
	case AnchorMiddle:
		return s.Clamp(float64(s.TotalCount)/2*s.RowHeight - s.ViewportHeight/2), nil
	case AnchorPosition:
		if err := validatePosition(s, target.Position); err != nil {
			return 0, err
		}

		return s.Clamp(float64(target.Position-1)*s.RowHeight - s.ViewportHeight/2), nil
	default:
		return 0, fmt.Errorf("%w: unknown anchor %d", domain.ErrInvalidPosition, target.Anchor)
	}
}

// TargetIndex returns the 0-based row a target points at, for moving a cursor
// along with the jump. On an empty list every anchor points at row 0 and
// numeric positions are rejected.
func TargetIndex(s State, target Target) (int, error) {
	switch target.Anchor {
	case AnchorStart:
		return 0, nil
	case AnchorEnd:
		return max(s.TotalCount-1, 0), nil
	case AnchorMiddle:
		return s.TotalCount / 2, nil
	case AnchorPosition:
		if err := validatePosition(s, target.Position); err != nil {
			return 0, err
		}

		return target.Position - 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown anchor %d", domain.ErrInvalidPosition, target.Anchor)
	}
}

func validatePosition(s State, position int) error {
	if position < 1 || position > s.TotalCount {
		return fmt.Errorf("%w: %d is outside 1..%d", domain.ErrInvalidPosition, position, s.TotalCount)
	}

	return nil
}
