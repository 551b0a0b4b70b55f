package logbook

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

func ids(entries []types.LogEntry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestSortOrders(t *testing.T) {
	entries := []types.LogEntry{{ID: 3}, {ID: 1}, {ID: 7}, {ID: 2}}

	tests := []struct {
		name  string
		order types.SortOrder
		want  []int64
	}{
		{"desc", types.SortDesc, []int64{7, 3, 2, 1}},
		{"asc", types.SortAsc, []int64{1, 2, 3, 7}},
		{"unknown falls back to desc", types.SortOrder("sideways"), []int64{7, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sorted(entries, tt.order)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	assert.Equal(t, []int64{3, 1, 7, 2}, ids(entries), "Sorted must not touch its input")
}

func TestSortIsStableOnTies(t *testing.T) {
	entries := []types.LogEntry{
		{ID: 1, DateStr: "first"},
		{ID: 2, DateStr: "a"},
		{ID: 1, DateStr: "second"},
		{ID: 2, DateStr: "b"},
	}

	desc := Sorted(entries, types.SortDesc)
	assert.Equal(t, []string{"a", "b", "first", "second"}, []string{desc[0].DateStr, desc[1].DateStr, desc[2].DateStr, desc[3].DateStr})

	asc := Sorted(entries, types.SortAsc)
	assert.Equal(t, []string{"first", "second", "a", "b"}, []string{asc[0].DateStr, asc[1].DateStr, asc[2].DateStr, asc[3].DateStr})
}

func TestSortMonotonic(t *testing.T) {
	entries := []types.LogEntry{{ID: 5}, {ID: -1}, {ID: 5}, {ID: 0}, {ID: 9}, {ID: 3}}

	desc := Sorted(entries, types.SortDesc)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].ID, desc[i].ID)
	}

	asc := Sorted(entries, types.SortAsc)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].ID, asc[i].ID)
	}
}

func TestJoinEvents(t *testing.T) {
	assert.Equal(t, "A；B", JoinEvents([]string{"A", "B"}))
	assert.Equal(t, "C", JoinEvents([]string{"C"}))
	assert.Equal(t, "", JoinEvents(nil))
}

func TestCardsToleratesMissingFields(t *testing.T) {
	cards := Cards([]types.LogEntry{{ID: 4}})

	assert.Len(t, cards, 1)
	assert.Equal(t, Card{ID: 4}, cards[0])
}

func TestNextID(t *testing.T) {
	id, err := NextID(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	id, err = NextID([]types.LogEntry{{ID: 2}, {ID: 9}, {ID: 4}})
	require.NoError(t, err)
	assert.EqualValues(t, 10, id)
}

func TestNextIDAtMaximum(t *testing.T) {
	_, err := NextID([]types.LogEntry{{ID: 1}, {ID: math.MaxInt64}})
	assert.ErrorIs(t, err, ErrIDsExhausted)
}

func TestParseEvents(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"  ", []string{}},
		{"A", []string{"A"}},
		{"A；B", []string{"A", "B"}},
		{"A; B\n\nC ;", []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseEvents(tt.in), "input %q", tt.in)
	}
}

func TestParseEventsRoundTripsJoin(t *testing.T) {
	events := []string{"Morning run", "读书"}
	assert.Equal(t, events, ParseEvents(JoinEvents(events)))
}
