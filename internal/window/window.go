// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package window computes which rows of a long fixed-height list intersect
// the viewport, and turns "jump to" requests into scroll offsets. Every
// function is plain arithmetic over the viewport state; nothing iterates the
// collection.
package window

import "math"

// DefaultOverscan is the number of extra rows kept above and below the
// visible range.
const DefaultOverscan = 5

// State is the geometry of a windowed list.
type State struct {
	TotalCount     int
	RowHeight      float64
	ViewportHeight float64
	ScrollOffset   float64
}

// ContentHeight returns the height of the full list.
func (s State) ContentHeight() float64 {
	return float64(max(s.TotalCount, 0)) * s.RowHeight
}

// MaxScrollOffset returns the largest offset that still fills the viewport.
func (s State) MaxScrollOffset() float64 {
	return math.Max(0, s.ContentHeight()-s.ViewportHeight)
}

// Clamp limits offset to [0, MaxScrollOffset].
func (s State) Clamp(offset float64) float64 {
	if math.IsNaN(offset) || offset < 0 {
		return 0
	}

	return math.Min(offset, s.MaxScrollOffset())
}

// Normalized returns s with its scroll offset clamped.
func (s State) Normalized() State {
	s.ScrollOffset = s.Clamp(s.ScrollOffset)

	return s
}

func (s State) valid() bool {
	return s.TotalCount > 0 && s.RowHeight > 0
}

// Range is an inclusive index range. End < Start means empty.
type Range struct {
	Start int
	End   int
}

// EmptyRange is the range of an empty list.
var EmptyRange = Range{Start: 0, End: -1}

// Empty reports whether the range holds no index.
func (r Range) Empty() bool {
	return r.End < r.Start
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}

	return r.End - r.Start + 1
}

// Contains reports whether index lies inside the range.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index <= r.End
}

// ComputeVisibleRange returns the rows intersecting the viewport widened by
// overscan rows on both sides, clamped to [0, TotalCount-1].
func ComputeVisibleRange(s State, overscan int) Range {
	if !s.valid() {
		return EmptyRange
	}

	offset := s.Clamp(s.ScrollOffset)
	last := s.TotalCount - 1

	start := int(math.Floor(offset / s.RowHeight))
	end := min(last, int(math.Ceil((offset+s.ViewportHeight)/s.RowHeight)))

	overscan = max(overscan, 0)

	return Range{
		Start: clampIndex(start-overscan, last),
		End:   clampIndex(end+overscan, last),
	}
}

// Rows returns the first row shown at the top of the viewport and how many
// whole rows fit below it.
func (s State) Rows() (int, int) {
	if !s.valid() {
		return 0, 0
	}

	first := clampIndex(int(math.Floor(s.Clamp(s.ScrollOffset)/s.RowHeight)), s.TotalCount-1)
	count := int(math.Floor(s.ViewportHeight / s.RowHeight))

	return first, max(0, min(count, s.TotalCount-first))
}

func clampIndex(index, last int) int {
	return max(0, min(index, last))
}
