package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOwnerFilterView(t *testing.T) {
	t.Parallel()
	owners := []string{"Alice", "Bob"}
	colors := BuildColorMap(owners)

	view := BuildOwnerFilterView(owners, colors, []string{"Bob"}, false, false, true)
	require.Len(t, view.Buttons, 2)
	assert.Equal(t, "Alice", view.Buttons[0].Owner)
	assert.False(t, view.Buttons[0].Active)
	assert.True(t, view.Buttons[1].Active)
	assert.True(t, view.HasWeekHistory)
	assert.False(t, view.ShowWeekHistory)
}

func TestBuildOwnerFilterViewSuppressesHistoryToggle(t *testing.T) {
	t.Parallel()
	view := BuildOwnerFilterView([]string{"Alice"}, nil, nil, true, true, false)
	assert.False(t, view.ShowWeekHistory, "no hidden columns means nothing to reveal")
	assert.False(t, view.HasWeekHistory)
	assert.True(t, view.ShowUnowned)
}
