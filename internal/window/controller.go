// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package window

// Controller holds the viewport state of one mounted list and keeps the
// scroll offset clamped as the list and the viewport change size.
type Controller struct {
	state    State
	overscan int
}

// NewController creates a controller for rows of rowHeight.
func NewController(rowHeight float64, overscan int) *Controller {
	if rowHeight <= 0 {
		rowHeight = 1
	}

	return &Controller{
		state:    State{RowHeight: rowHeight},
		overscan: max(overscan, 0),
	}
}

// State returns the current viewport state.
func (c *Controller) State() State {
	return c.state
}

// Overscan returns the configured overscan.
func (c *Controller) Overscan() int {
	return c.overscan
}

// SetTotal updates the number of rows, as after a fetch.
func (c *Controller) SetTotal(total int) {
	c.state.TotalCount = max(total, 0)
	c.state = c.state.Normalized()
}

// Resize updates the viewport height, as after a terminal resize.
func (c *Controller) Resize(viewportHeight float64) {
	c.state.ViewportHeight = max(viewportHeight, 0)
	c.state = c.state.Normalized()
}

// ScrollTo moves to offset, clamped, and returns the applied offset.
func (c *Controller) ScrollTo(offset float64) float64 {
	c.state.ScrollOffset = c.state.Clamp(offset)

	return c.state.ScrollOffset
}

// ScrollBy moves by delta, clamped, and returns the applied offset.
func (c *Controller) ScrollBy(delta float64) float64 {
	return c.ScrollTo(c.state.ScrollOffset + delta)
}

// Jump scrolls to target. On error the offset is left unchanged.
func (c *Controller) Jump(target Target) error {
	offset, err := JumpToPosition(c.state, target)
	if err != nil {
		return err
	}

	c.state.ScrollOffset = offset

	return nil
}

// EnsureVisible scrolls the least amount needed to show row index in full.
func (c *Controller) EnsureVisible(index int) {
	if index < 0 || index >= c.state.TotalCount {
		return
	}

	top := float64(index) * c.state.RowHeight
	bottom := top + c.state.RowHeight

	switch {
	case top < c.state.ScrollOffset:
		c.ScrollTo(top)
	case bottom > c.state.ScrollOffset+c.state.ViewportHeight:
		c.ScrollTo(bottom - c.state.ViewportHeight)
	}
}

// Visible returns the visible range widened by the overscan.
func (c *Controller) Visible() Range {
	return ComputeVisibleRange(c.state, c.overscan)
}
