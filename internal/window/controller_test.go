// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolab/algolab/internal/domain"
)

func TestControllerKeepsOffsetClamped(t *testing.T) {
	t.Parallel()

	c := NewController(1, 2)
	c.SetTotal(100)
	c.Resize(10)

	assert.InDelta(t, 90.0, c.ScrollTo(500), 0)
	assert.InDelta(t, 85.0, c.ScrollBy(-5), 0)

	c.SetTotal(20)
	assert.InDelta(t, 10.0, c.State().ScrollOffset, 0, "shrinking the list clamps the offset")

	c.Resize(40)
	assert.InDelta(t, 0.0, c.State().ScrollOffset, 0)
}

func TestControllerJumpLeavesStateOnError(t *testing.T) {
	t.Parallel()

	c := NewController(50, DefaultOverscan)
	c.SetTotal(10000)
	c.Resize(500)
	c.ScrollTo(1234)

	err := c.Jump(Position(10001))
	require.ErrorIs(t, err, domain.ErrInvalidPosition)
	assert.InDelta(t, 1234.0, c.State().ScrollOffset, 0)

	require.NoError(t, c.Jump(Position(5000)))
	assert.InDelta(t, 249700.0, c.State().ScrollOffset, 0)
	assert.Equal(t, Range{Start: 4989, End: 5009}, c.Visible())
}

func TestControllerEnsureVisible(t *testing.T) {
	t.Parallel()

	c := NewController(0, -1)
	c.SetTotal(100)
	c.Resize(10)

	assert.Zero(t, c.Overscan())
	assert.InDelta(t, 1.0, c.State().RowHeight, 0)

	c.EnsureVisible(15)
	assert.InDelta(t, 6.0, c.State().ScrollOffset, 0)

	c.EnsureVisible(10)
	assert.InDelta(t, 6.0, c.State().ScrollOffset, 0, "already visible rows do not scroll")

	c.EnsureVisible(2)
	assert.InDelta(t, 2.0, c.State().ScrollOffset, 0)

	c.EnsureVisible(500)
	assert.InDelta(t, 2.0, c.State().ScrollOffset, 0)
}
