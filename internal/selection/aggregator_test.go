package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnSelectionChangeReplaces(t *testing.T) {
	t.Parallel()

	a := NewAggregator(ClearOnDisable)
	a.OnSelectionChange([]int{1, 3})
	assert.Equal(t, Set{1, 3}, a.Selected())

	a.OnSelectionChange([]int{2})
	assert.Equal(t, Set{2}, a.Selected())
	assert.False(t, a.Contains(1))
	assert.False(t, a.Contains(3))
}

func TestOnSelectionChangeEmpty(t *testing.T) {
	t.Parallel()

	a := NewAggregator(ClearOnDisable)
	a.OnSelectionChange([]int{4, 5})
	a.OnSelectionChange(nil)

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, "", a.Summary())
}

func TestOnSelectionChangeCopiesInput(t *testing.T) {
	t.Parallel()

	a := NewAggregator(ClearOnDisable)
	ids := []int{5, 1, 5}
	a.OnSelectionChange(ids)
	ids[0] = 99

	assert.Equal(t, Set{1, 5}, a.Selected())

	held := a.Selected()
	held[0] = 42
	assert.True(t, a.Contains(1))
}

func TestSetSelectablePolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy DisablePolicy
		want   Set
	}{
		{name: "clear on disable", policy: ClearOnDisable, want: Set{}},
		{name: "retain on disable", policy: RetainOnDisable, want: Set{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator(tt.policy)
			a.OnSelectionChange([]int{2, 1})

			a.SetSelectable(false)
			assert.False(t, a.Selectable())
			assert.Equal(t, tt.want, a.Selected())

			a.SetSelectable(true)
			assert.True(t, a.Selectable())
			assert.Equal(t, tt.want, a.Selected())
			assert.Equal(t, tt.policy, a.Policy())
		})
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	a := NewAggregator(ClearOnDisable)
	a.OnSelectionChange([]int{3})
	assert.Equal(t, "1 row selected", a.Summary())

	a.OnSelectionChange([]int{1, 2, 3})
	assert.Equal(t, "3 rows selected", a.Summary())
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	s := NewSet(3, 1, 2, 3)
	assert.Equal(t, Set{1, 2, 3}, s)
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
	assert.False(t, Set{}.Contains(0))
}
