package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirectiveBFS(t *testing.T) {
	d, err := parseDirective(";BFS(10000) = S(12)")
	require.NoError(t, err)
	require.Equal(t, directiveBFS, d.kind)
	require.EqualValues(t, 10000, d.maxIterations)
	require.Equal(t, expectSolvedLength, d.expect.kind)
	require.Equal(t, 12, d.expect.length)
}

func TestParseDirectiveAStar(t *testing.T) {
	d, err := parseDirective(";A*(1, 1, 10000) = S(_)")
	require.NoError(t, err)
	require.Equal(t, directiveAStar, d.kind)
	require.EqualValues(t, 1, d.hFactor)
	require.EqualValues(t, 1, d.gFactor)
	require.Equal(t, expectSolvedAny, d.expect.kind)
}

func TestParseDirectiveUnsolvable(t *testing.T) {
	d, err := parseDirective(";BFS(10000) = U")
	require.NoError(t, err)
	require.Equal(t, expectUnsolvable, d.expect.kind)
}

func TestParseDirectiveCompilableOnly(t *testing.T) {
	d, err := parseDirective(";BFS(10000) = C")
	require.NoError(t, err)
	require.Equal(t, expectCompilableOnly, d.expect.kind)
}

func TestParseDirectiveRejectsUnknownName(t *testing.T) {
	_, err := parseDirective(";DFS(10) = U")
	require.Error(t, err)
}

func TestParseDirectiveRejectsMissingEquals(t *testing.T) {
	_, err := parseDirective(";BFS(10) U")
	require.Error(t, err)
}

func TestParseHarnessGroupsByLevel(t *testing.T) {
	text := "# a comment\n" +
		"..0.\n" +
		"..+.\n" +
		".11.\n" +
		"....\n" +
		";BFS(10000) = S(12)\n" +
		";A*(1, 1, 10000) = S(12)\n" +
		"\n" +
		".10.\n" +
		"..A.\n" +
		"0110\n" +
		"0110\n" +
		";BFS(10000) = U\n"

	groups, err := parseHarness(text)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Len(t, groups[0].rows, 4)
	require.Len(t, groups[0].directives, 2)
	require.Equal(t, "..0...+..11.....", groups[0].level)

	require.Len(t, groups[1].rows, 4)
	require.Len(t, groups[1].directives, 1)
}

func TestParseHarnessRejectsLeadingDirective(t *testing.T) {
	_, err := parseHarness(";BFS(10) = U\n....\n")
	require.Error(t, err)
}

func TestLevelDimensionsRequiresUniformWidth(t *testing.T) {
	_, _, err := levelDimensions([]string{"....", "..."})
	require.Error(t, err)
}

func TestLevelDimensionsOK(t *testing.T) {
	w, h, err := levelDimensions([]string{"..0.", "..+.", ".11.", "...."})
	require.NoError(t, err)
	require.Equal(t, 4, w)
	require.Equal(t, 4, h)
}
