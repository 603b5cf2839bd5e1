package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFromSlice(t *testing.T) {
	got := Collect(FromSlice([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCollectEmpty(t *testing.T) {
	assert.Nil(t, Collect(FromSlice([]int{})))
	assert.Nil(t, Collect(FromSlice[int](nil)))
}

func TestLaziness(t *testing.T) {
	calls := 0
	p := Map(FromSlice([]int{1, 2, 3, 4}), func(n int) int {
		calls++
		return n * 2
	})
	assert.Equal(t, 0, calls, "no work before values are pulled")

	got := Collect(Take(p, 2))
	assert.Equal(t, []int{2, 4}, got)
	assert.Equal(t, 2, calls, "only pulled values are computed")
}

func TestMapFilterChain(t *testing.T) {
	src := FromSlice([]int{1, 2, 3, 4, 5})
	doubled := Map(src, func(n int) int { return n * 2 })
	big := Filter(doubled, func(n int) bool { return n > 4 })
	assert.Equal(t, []int{6, 8, 10}, Collect(big))
}

func TestRemoveComplementsFilter(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6}
	even := func(n int) bool { return n%2 == 0 }
	kept := Collect(Filter(FromSlice(src), even))
	dropped := Collect(Remove(FromSlice(src), even))
	assert.Len(t, kept, 3)
	assert.Len(t, dropped, 3)
	assert.ElementsMatch(t, src, append(kept, dropped...))
}

func TestFlatMap(t *testing.T) {
	got := Collect(FlatMap(FromSlice([]string{"a b", "c", ""}), strings.Fields))
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"prefix", 2, []int{1, 2}},
		{"all", 3, []int{1, 2, 3}},
		{"past end", 10, []int{1, 2, 3}},
		{"zero", 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collect(Take(FromSlice([]int{1, 2, 3}), tc.n)))
		})
	}
}

func TestConcat(t *testing.T) {
	got := Collect(Concat(FromSlice([]int{1, 2}), FromSlice([]int{}), FromSlice([]int{3})))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 4, Count(FromSlice([]string{"a", "b", "c", "d"})))
	assert.Equal(t, 0, Count(FromSlice[string](nil)))
}

func TestForEach(t *testing.T) {
	var got []int
	ForEach(FromSlice([]int{1, 2, 3}), func(n int) { got = append(got, n) })
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIndistinct(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"documented example", []int{1, 2, 1, 2, 2, 3, 4, 5, 1}, []int{1, 2, 2, 1}},
		{"no repeats", []int{1, 2, 3}, nil},
		{"all same", []int{7, 7, 7}, []int{7, 7}},
		{"empty", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collect(Indistinct(FromSlice(tc.in))))
		})
	}
}

func TestDedupeBy(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	people := []person{
		{"Bob", 31},
		{"Ed", 31},
		{"Stacy", 35},
		{"Nemo", 42},
	}
	got := Collect(DedupeBy(FromSlice(people), func(p person) int { return p.age }))
	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.name
	}
	assert.Equal(t, []string{"Bob", "Stacy", "Nemo"}, names)
}

func TestDedupeByRetainsNonConsecutiveRepeats(t *testing.T) {
	got := Collect(DedupeBy(FromSlice([]int{1, 1, 2, 1, 1, 3}), func(n int) int { return n }))
	assert.Equal(t, []int{1, 2, 1, 3}, got)
}

func TestDedupeByZeroKeyFirstElement(t *testing.T) {
	// A zero-valued first key must not be confused with "no previous key".
	got := Collect(DedupeBy(FromSlice([]int{0, 0, 1}), func(n int) int { return n }))
	assert.Equal(t, []int{0, 1}, got)
}

func TestStatefulStageFreshPerTraversal(t *testing.T) {
	p := Indistinct(FromSlice([]int{1, 1, 2}))
	first := Collect(p)
	second := Collect(p)
	assert.Equal(t, []int{1}, first)
	assert.Equal(t, first, second, "each traversal gets a fresh seen-set")
}

func TestComposeStages(t *testing.T) {
	lowerRepeats := Compose(
		MapStage(strings.ToLower),
		IndistinctStage[string](),
	)
	got := Collect(lowerRepeats(FromSlice([]string{"Go", "go", "rust", "GO"})))
	assert.Equal(t, []string{"go", "go"}, got)
}

func TestStageReuse(t *testing.T) {
	st := DedupeByStage(func(n int) int { return n / 10 })
	a := Collect(st(FromSlice([]int{11, 12, 25})))
	b := Collect(st(FromSlice([]int{31, 45, 46})))
	assert.Equal(t, []int{11, 25}, a)
	assert.Equal(t, []int{31, 45}, b)
}

func TestNilFuncPanics(t *testing.T) {
	require.Panics(t, func() { Map[int, int](FromSlice([]int{1}), nil) })
	require.Panics(t, func() { Filter[int](FromSlice([]int{1}), nil) })
	require.Panics(t, func() { MapStage[int, int](nil) })
	require.Panics(t, func() { DedupeByStage[int, int](nil) })
}
