package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterStateToggle(t *testing.T) {
	t.Parallel()
	var seen [][]string
	fs := NewFilterState(func(active []string) {
		seen = append(seen, active)
	})

	fs.Toggle("Alice")
	fs.Toggle("Bob")
	assert.True(t, fs.IsActive("Alice"))
	assert.True(t, fs.IsActive("Bob"))
	assert.Equal(t, []string{"Alice", "Bob"}, fs.Active())

	fs.Toggle("Alice")
	assert.False(t, fs.IsActive("Alice"), "toggling twice restores the starting membership")
	assert.Equal(t, []string{"Bob"}, fs.Active())

	assert.Len(t, seen, 3, "every mutation notifies the listener")
	assert.Equal(t, []string{"Bob"}, seen[2])
}

func TestFilterStateClear(t *testing.T) {
	t.Parallel()
	fs := NewFilterState(nil)
	fs.Toggle("Alice")
	fs.Toggle("Bob")
	fs.Clear()
	assert.Empty(t, fs.Active())
	assert.False(t, fs.IsActive("Alice"))
}

func TestFilterStateActiveIsACopy(t *testing.T) {
	t.Parallel()
	fs := NewFilterState(nil)
	fs.Toggle("Alice")
	active := fs.Active()
	active[0] = "mutated"
	assert.Equal(t, []string{"Alice"}, fs.Active())
}
