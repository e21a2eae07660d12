package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ============================================================================
// StepTrace - Read-Only View of the Applied-Constraint Stack
// ============================================================================
//
// StepTrace never mutates anything; it is a pure rendering of whatever is
// currently on the Stack, bottom (oldest) first. A single B or T record
// can carry eliminations for more than one symbol at once (a tuple can
// rule out several values in the same pass), so pretty-printing groups a
// record's eliminations by value before rendering each as its own
// bracketed group.
//
// ============================================================================

// Step is one trace entry: a rule application and the cell(s)/value(s)
// it touched.
type Step struct {
	Kind  RuleKind
	Cells []int // F/N: the single assigned cell; B/T: eliminated cells; Choice: the trial cell
	Value int
}

// Trace renders a Stack's current contents as an ordered list of Steps,
// bottom (oldest) first.
func Trace(stack *Stack) []Step {
	records := stack.Records()
	steps := make([]Step, 0, len(records))
	for _, rec := range records {
		steps = append(steps, recordToStep(rec))
	}
	return steps
}

func recordToStep(rec *StackRecord) Step {
	switch rec.Kind {
	case RuleF, RuleN, RuleChoice:
		return Step{Kind: rec.Kind, Cells: []int{rec.Cell}, Value: rec.Value}
	default: // RuleB, RuleT
		cells := make([]int, len(rec.Eliminations))
		for i, el := range rec.Eliminations {
			cells[i] = el.Cell
		}
		return Step{Kind: rec.Kind, Cells: cells, Value: 0}
	}
}

// PrettyTrace renders a Stack as the "F[cell v]", "N[cell v]",
// "B[[cells] v]", "T[[cells] v]" notation, one rule application per
// token, space-separated. A record touching several values in one pass
// (a B or T elimination can) renders as one bracketed group per value.
func PrettyTrace(stack *Stack) string {
	var parts []string
	for _, rec := range stack.Records() {
		parts = append(parts, prettyRecord(rec)...)
	}
	return strings.Join(parts, " ")
}

func prettyRecord(rec *StackRecord) []string {
	switch rec.Kind {
	case RuleF, RuleN:
		return []string{fmt.Sprintf("%s[%d %d]", rec.Kind, rec.Cell, rec.Value)}

	case RuleChoice:
		return []string{fmt.Sprintf("%s[%d %d]", rec.Kind, rec.Cell, rec.Value)}

	default: // RuleB, RuleT
		byValue := make(map[int][]int)
		for _, el := range rec.Eliminations {
			byValue[el.Value] = append(byValue[el.Value], el.Cell)
		}
		values := make([]int, 0, len(byValue))
		for v := range byValue {
			values = append(values, v)
		}
		sort.Ints(values)

		groups := make([]string, 0, len(values))
		for _, v := range values {
			cells := byValue[v]
			sort.Ints(cells)
			groups = append(groups, fmt.Sprintf("%s[%s %d]", rec.Kind, formatCellList(cells), v))
		}
		return groups
	}
}

// ConstraintsUsed summarizes a Stack as the ordered-distinct deductive
// rule letters applied, terminated by ".": e.g. "F." for a puzzle solved
// by forced singles alone, "FN." once the necessary rule also fired.
// RuleChoice (backtracking trials) is not a deductive constraint and is
// omitted; a puzzle solved purely by backtracking renders as ".".
func ConstraintsUsed(stack *Stack) string {
	var b strings.Builder
	seen := make(map[RuleKind]bool, 4)
	for _, rec := range stack.Records() {
		if rec.Kind == RuleChoice || seen[rec.Kind] {
			continue
		}
		seen[rec.Kind] = true
		b.WriteString(rec.Kind.String())
	}
	b.WriteByte('.')
	return b.String()
}

func formatCellList(cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
