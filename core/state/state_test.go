package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/state"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("partial_overwrites_top_level_keys", func(t *testing.T) {
		t.Parallel()
		base := state.State{"a": 1, "b": "x"}
		got := state.Merge(base, state.State{"b": "y", "c": true})

		assert.Equal(t, state.State{"a": 1, "b": "y", "c": true}, got)
		assert.Equal(t, state.State{"a": 1, "b": "x"}, base, "base must not be modified")
	})

	t.Run("nested_values_are_replaced_not_merged", func(t *testing.T) {
		t.Parallel()
		base := state.State{"filters": map[string]string{"search": "foo", "sort": "price_asc"}}
		got := state.Merge(base, state.State{"filters": map[string]string{"search": "bar"}})

		assert.Equal(t, map[string]string{"search": "bar"}, got["filters"])
	})

	t.Run("sequence_of_merges_equals_fold", func(t *testing.T) {
		t.Parallel()
		partials := []state.State{
			{"a": 1},
			{"b": 2},
			{"a": 3, "c": nil},
			{"b": "two"},
		}
		s := state.State{"init": true}
		for _, p := range partials {
			s = state.Merge(s, p)
		}
		assert.Equal(t, state.State{"init": true, "a": 3, "b": "two", "c": nil}, s)
	})

	t.Run("nil_inputs", func(t *testing.T) {
		t.Parallel()
		got := state.Merge(nil, nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	s := state.State{
		"name":    "lamp",
		"count":   3,
		"loading": false,
		"nothing": nil,
	}

	name, ok := state.Get[string](s, "name")
	assert.True(t, ok)
	assert.Equal(t, "lamp", name)

	_, ok = state.Get[int](s, "name")
	assert.False(t, ok, "mistyped value reports absent")

	_, ok = state.Get[string](s, "missing")
	assert.False(t, ok)

	_, ok = state.Get[string](s, "nothing")
	assert.False(t, ok, "nil value reports absent")

	assert.Equal(t, 3, s.Int("count"))
	assert.False(t, s.Bool("loading"))
	assert.Equal(t, "", s.String("missing"))
	assert.True(t, s.Has("nothing"))
	assert.False(t, s.Has("missing"))
}

func TestClone(t *testing.T) {
	t.Parallel()

	s := state.State{"a": 1}
	c := s.Clone()
	c["a"] = 2
	assert.Equal(t, 1, s["a"])

	var empty state.State
	assert.NotNil(t, empty.Clone())
}

func TestSame(t *testing.T) {
	t.Parallel()

	slice := []int{1, 2}
	m := map[string]int{"a": 1}
	type item struct{ ID string }
	ptr := &item{ID: "1"}
	type handlers struct {
		Name  string
		On    func()
		Items []int
	}
	fn := func() {}
	h := handlers{Name: "a", On: fn, Items: slice}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal_strings", "a", "a", true},
		{"different_strings", "a", "b", false},
		{"different_types", 1, "1", false},
		{"both_nil", nil, nil, true},
		{"one_nil", nil, 0, false},
		{"same_slice", slice, slice, true},
		{"equal_but_distinct_slices", []int{1, 2}, []int{1, 2}, false},
		{"same_map", m, m, true},
		{"distinct_maps", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
		{"same_pointer", ptr, ptr, true},
		{"distinct_pointers", &item{ID: "1"}, &item{ID: "1"}, false},
		{"equal_structs", item{ID: "1"}, item{ID: "1"}, true},
		{"nil_slices", []int(nil), []int(nil), true},
		{"struct_with_func_equals_itself", h, h, true},
		{"struct_copy_with_same_func", h, handlers{Name: "a", On: fn, Items: slice}, true},
		{"struct_with_other_func", h, handlers{Name: "a", On: func() {}, Items: slice}, false},
		{"struct_with_distinct_slice", h, handlers{Name: "a", On: fn, Items: []int{1, 2}}, false},
		{"struct_with_changed_field", h, handlers{Name: "b", On: fn, Items: slice}, false},
		{"arrays_of_funcs", [1]func(){fn}, [1]func(){fn}, true},
		{"structs_with_nil_interface", struct{ V any }{}, struct{ V any }{}, true},
		{"structs_with_slice_in_interface", struct{ V any }{slice}, struct{ V any }{slice}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, state.Same(tt.a, tt.b))
		})
	}
}

func TestSameTuple(t *testing.T) {
	t.Parallel()

	assert.True(t, state.SameTuple([]any{"a", 1}, []any{"a", 1}))
	assert.False(t, state.SameTuple([]any{"a", 1}, []any{"a", 2}))
	assert.False(t, state.SameTuple([]any{"a"}, []any{"a", 1}))
	assert.True(t, state.SameTuple(nil, []any{}))
}
