package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dynarray.script")
	defer teardown()
	//
	scenarios, err := Builtin()
	require.NoError(t, err)
	require.Len(t, scenarios, 6)
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			report, err := Run(sc)
			require.NoError(t, err)
			assert.Equal(t, len(sc.Steps), report.Steps)
			for _, snap := range report.Snapshots {
				t.Log(snap)
			}
		})
	}
}

func TestSnapshots(t *testing.T) {
	scenarios, err := Builtin()
	require.NoError(t, err)
	report, err := Run(scenarios[1]) // push-pop
	require.NoError(t, err)
	require.Len(t, report.Snapshots, 2)
	assert.Equal(t, "After pushFront + pushBack: [ 5 10 20 ] (size = 3, capacity = 4)",
		report.Snapshots[0].String())
	assert.Equal(t, "After popBack + popFront: [ 10 ] (size = 1, capacity = 4)",
		report.Snapshots[1].String())
}

func TestParseMultipleDocuments(t *testing.T) {
	input := `
name: first
init: [1, 2]
steps:
  - op: push_back
    value: 3
---
name: second
steps:
  - op: pop_back
    error: empty
`
	scenarios, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "first", scenarios[0].Name)
	assert.Equal(t, []float64{1, 2}, scenarios[0].Init)
	assert.Equal(t, 3.0, scenarios[0].Steps[0].Value)
	assert.Equal(t, "empty", scenarios[1].Steps[0].Error)
}

func TestParseErrors(t *testing.T) {
	// no name, unknown op, unknown error kind, invalid YAML, query results on ops not producing them
	inputs := []string{
		"steps: []",
		"name: x\nsteps:\n  - op: explode",
		"name: x\nsteps:\n  - op: pop_back\n    error: boom",
		"name: [",
		"name: x\nsteps:\n  - op: push_back\n    value: 1\n    expect:\n      index: 0",
		"name: x\nsteps:\n  - op: find\n    value: 1\n    expect:\n      sum: 0",
		"name: x\nsteps:\n  - op: expect\n    expect:\n      value: 0",
	}
	for i, input := range inputs {
		_, err := ParseBytes([]byte(input))
		assert.True(t, errors.Is(err, ErrScript), "%d: expected ErrScript, got %v", i, err)
	}
}

func TestRunFailingExpectation(t *testing.T) {
	scenarios, err := ParseBytes([]byte(`
name: wrong
init: [1, 2, 3]
steps:
  - op: pop_back
  - op: find
    value: 3
    expect:
      index: 2
`))
	require.NoError(t, err)
	report, err := Run(scenarios[0])
	assert.True(t, errors.Is(err, ErrExpectation), "expected ErrExpectation, got %v", err)
	assert.Equal(t, 1, report.Steps)
}

func TestRunResultsDoNotLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dynarray.script")
	defer teardown()
	//
	scenarios, err := ParseBytes([]byte(`
name: stale
init: [1, 2, 3]
steps:
  - op: get
    pos: 2
    expect:
      value: 3
  - op: get
    pos: 7
    error: range
    expect:
      value: 0
`))
	require.NoError(t, err)
	report, err := Run(scenarios[0])
	require.NoError(t, err, "a failed get must not report the value of an earlier one")
	assert.Equal(t, 2, report.Steps)
	//
	scenarios, err = ParseBytes([]byte(`
name: stale
init: [1, 2, 3]
steps:
  - op: find
    value: 3
    expect:
      index: 2
  - op: find
    value: 9
    expect:
      index: 2
`))
	require.NoError(t, err)
	report, err = Run(scenarios[0])
	assert.True(t, errors.Is(err, ErrExpectation), "expected ErrExpectation, got %v", err)
	assert.Equal(t, 1, report.Steps)
}

func TestRunUnexpectedError(t *testing.T) {
	scenarios, err := ParseBytes([]byte(`
name: unexpected
steps:
  - op: pop_front
`))
	require.NoError(t, err)
	_, err = Run(scenarios[0])
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrExpectation))
	//
	scenarios, err = ParseBytes([]byte(`
name: missing
init: [1]
steps:
  - op: pop_front
    error: empty
`))
	require.NoError(t, err)
	_, err = Run(scenarios[0])
	assert.True(t, errors.Is(err, ErrExpectation), "expected missing error to be reported, got %v", err)
}

func TestRunAllocationLimit(t *testing.T) {
	scenarios, err := ParseBytes([]byte(`
name: limited
limit: 4
growth: 3
init: [1, 2]
steps:
  - op: push_back
    value: 3
    expect:
      capacity: 4
  - op: push_back
    value: 4
  - op: push_back
    value: 5
    error: allocation
    expect:
      values: [1, 2, 3, 4]
`))
	require.NoError(t, err)
	_, err = Run(scenarios[0])
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\ninit: [4]\nsteps:\n  - op: erase\n    pos: 0\n    expect:\n      size: 0\n"), 0o644))
	scenarios, err := Load(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	_, err = Run(scenarios[0])
	assert.NoError(t, err)
	//
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
