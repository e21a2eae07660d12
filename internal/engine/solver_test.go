package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolverSolvesSudokuByForcedSinglesAlone(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("sudoku", 2))

	// Box-size-2 (4x4) sudoku with exactly one cell missing per row,
	// column, and box - every gap is a forced single, so F alone
	// solves it without ever reaching BacktrackSearch.
	require.NoError(t, s.Problem(".23434.22.43432."))

	status, err := s.Solution()
	require.NoError(t, err)
	require.Equal(t, "solved", status)
	require.Equal(t, "1234\n3412\n2143\n4321", s.Output())

	// Every applied step should be a forced-single (F), never a choice.
	for _, step := range s.Trace() {
		require.Equal(t, RuleF, step.Kind)
	}
}

func TestSolverEnumeratesBothLatinSquareSolutions(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("latin", 2))
	require.NoError(t, s.Problem("...."))

	status, err := s.Solution()
	require.NoError(t, err)
	require.Equal(t, "solved", status)
	first := s.Output()

	status, err = s.Solution()
	require.NoError(t, err)
	require.Equal(t, "solved", status)
	second := s.Output()

	require.NotEqual(t, first, second, "the two solutions of a 2x2 Latin square must differ")
	require.ElementsMatch(t, []string{"AB\nBA", "BA\nAB"}, []string{first, second})

	status, err = s.Solution()
	require.NoError(t, err)
	require.Equal(t, "no_solution", status, "a 2x2 Latin square has exactly two solutions")
}

func TestSolverRejectsConflictingGivens(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("latin", 2))

	err := s.Problem("AA..")
	require.Error(t, err)
	var probErr *ProblemError
	require.ErrorAs(t, err, &probErr)
}

func TestSolverRequiresConfigurationBeforeProblem(t *testing.T) {
	s := NewSolver()
	err := s.Problem("....")
	require.Error(t, err)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestSolverRequiresProblemBeforeSolution(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("latin", 2))

	_, err := s.Solution()
	require.Error(t, err)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestConfigureUnknownAttribute(t *testing.T) {
	s := NewSolver()
	err := s.Configure("not_a_real_attribute", "x")
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestConfigureStatusValueOverride(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("latin", 2))
	require.NoError(t, s.Configure("status_value", "solved=SOLVED"))
	require.NoError(t, s.Problem("...."))

	status, err := s.Solution()
	require.NoError(t, err)
	require.Equal(t, "SOLVED", status)
}

func TestIterationLimitReportsTooHard(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.Configure("symbols", ". 1 2"))
	// Two independent two-cell sets: each needs its own choice point,
	// since neither rules down to a forced single nor shares any
	// constraint with the other. A limit of 1 lets the first choice be
	// tried but must bail out before the second.
	require.NoError(t, s.Configure("topology", "s0 s0 s1 s1"))
	require.NoError(t, s.Configure("iteration_limit", "1"))
	require.NoError(t, s.Problem("...."))

	status, err := s.Solution()
	require.NoError(t, err)
	require.Equal(t, "too_hard", status)
}

func TestApplyPresetRejectsBadBrickDimensions(t *testing.T) {
	s := NewSolver()
	err := s.ApplyPreset("brick", 2, 3, 5)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestApplyPresetBrick(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("brick", 2, 3, 6))
	require.Equal(t, 6, s.Columns())
}

func TestSolverConstraintsUsedReportsOrderedDistinctRuleLetters(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("sudoku", 2))
	require.NoError(t, s.Problem(".23434.22.43432."))

	require.Equal(t, ".", s.ConstraintsUsed(), "nothing applied yet")

	status, err := s.Solution()
	require.NoError(t, err)
	require.Equal(t, "solved", status)
	require.Equal(t, "F.", s.ConstraintsUsed(), "every gap here is a forced single")
}

func TestSolverProblemRejectsUnknownTokenWhenDelimiterRequired(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.Configure("symbols", ". 10 11"))
	require.NoError(t, s.Configure("topology", "s0 s0"))

	err := s.Problem("10 bogus")
	require.Error(t, err)
	var probErr *ProblemError
	require.ErrorAs(t, err, &probErr)
}

func TestSolverProblemAcceptsUnknownTokenWithoutDelimiter(t *testing.T) {
	s := NewSolver()
	require.NoError(t, s.ApplyPreset("latin", 2))

	// Single-character alphabet, no multi-character set names: an
	// unrecognized token stays lenient and is treated as a blank cell.
	require.NoError(t, s.Problem("?..."))
}
