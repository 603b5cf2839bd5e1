package maps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rschmukler/utopia/pipeline"
)

func TestApplyRunsStageEagerly(t *testing.T) {
	st := ValuesStage[string](func(n int) int { return n + 1 })
	got := Apply(st, map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[string]int{"a": 2, "b": 3}, got)
}

func TestApplyNilPunsWithoutRunningStage(t *testing.T) {
	ran := false
	st := ValuesStage[string](func(n int) int {
		ran = true
		return n
	})
	assert.Nil(t, Apply(st, map[string]int(nil)))
	assert.False(t, ran)
}

func TestApplyNilStagePanics(t *testing.T) {
	var st pipeline.Stage[Entry[string, int], Entry[string, int]]
	assert.PanicsWithError(t, "INVALID_INPUT: invalid argument: function must not be nil", func() {
		Apply(st, map[string]int{"a": 1})
	})
	assert.Panics(t, func() { Apply(st, map[string]int(nil)) }, "misuse is checked before nil-punning")
}

func TestStageComposition(t *testing.T) {
	normalize := pipeline.Compose(
		KeysStage[string, string, int](strings.ToLower),
		FilterValuesStage[string](func(n int) bool { return n > 0 }),
	)
	got := Apply(normalize, map[string]int{"Alpha": 1, "BETA": -2, "Gamma": 3})
	assert.Equal(t, map[string]int{"alpha": 1, "gamma": 3}, got)
}

func TestStageReusableAcrossMaps(t *testing.T) {
	st := RemoveValuesStage[string](func(n int) bool { return n == 0 })
	assert.Equal(t, map[string]int{"a": 1}, Apply(st, map[string]int{"a": 1, "b": 0}))
	assert.Equal(t, map[string]int{"c": 2}, Apply(st, map[string]int{"c": 2, "d": 0}))
}

func TestStagesDriveEntryPipelinesDirectly(t *testing.T) {
	// A stage is an ordinary pipeline stage; it can run inside a larger
	// lazy pipeline without ever materializing a map.
	st := FilterKeysStage[string, int](func(k string) bool { return k != "skip" })
	entries := []Entry[string, int]{{"keep", 1}, {"skip", 2}, {"also", 3}}
	got := pipeline.Collect(st(pipeline.FromSlice(entries)))
	assert.Equal(t, []Entry[string, int]{{"keep", 1}, {"also", 3}}, got)
}

func TestLeavesStage(t *testing.T) {
	st := LeavesStage[string](func(v any) any { return v.(int) * 2 })
	got := Apply(st, map[string]any{"a": 1, "b": map[string]any{"c": 3}})
	assert.Equal(t, map[string]any{"a": 2, "b": map[string]any{"c": 6}}, got)
}

func TestEntriesFromEntriesRoundTrip(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assert.Equal(t, m, FromEntries(Entries(m)))
}

func TestNamespaceKeys(t *testing.T) {
	tests := []struct {
		name string
		ns   string
		in   map[string]int
		want map[string]int
	}{
		{"adds namespace", "user", map[string]int{"name": 1}, map[string]int{"user/name": 1}},
		{"replaces namespace", "user", map[string]int{"db/id": 2}, map[string]int{"user/id": 2}},
		{"replaces nested namespace", "u", map[string]int{"a/b/c": 3}, map[string]int{"u/c": 3}},
		{"mixed", "x", map[string]int{"a": 1, "y/b": 2}, map[string]int{"x/a": 1, "x/b": 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NamespaceKeys(tc.ns, tc.in))
		})
	}
}

func TestNamespaceKeysNil(t *testing.T) {
	assert.Nil(t, NamespaceKeys("user", map[string]int(nil)))
}

func TestNsKeysAlias(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.Equal(t, NamespaceKeys("n", m), NsKeys("n", m))
}

func TestLocalNameAndNamespace(t *testing.T) {
	assert.Equal(t, "name", LocalName("user/name"))
	assert.Equal(t, "name", LocalName("name"))
	assert.Equal(t, "user", Namespace("user/name"))
	assert.Equal(t, "a/b", Namespace("a/b/c"))
	assert.Equal(t, "", Namespace("name"))
}
