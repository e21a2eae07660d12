package engine

// ============================================================================
// ConstraintEngine - Deductive Rules F, N, B, T
// ============================================================================
//
// RunFixpoint tries the rules in the fixed order F, N, B, T. Whenever any
// rule makes progress it restarts from F, because F and N give concrete
// placements and are the cheapest to re-check; B and T only narrow
// possibilities. When none of the four rules applies, control passes to
// BacktrackSearch (backtrack.go), which shares this same BoardState and
// Stack so that resuming after a reported solution continues naturally.
//
// ============================================================================

// ConstraintEngine runs the F/N/B/T fixpoint loop against a shared
// BoardState and Stack.
type ConstraintEngine struct {
	Board *BoardState
	Stack *Stack
}

// NewConstraintEngine binds a ConstraintEngine to a board and the stack
// it shares with BacktrackSearch.
func NewConstraintEngine(board *BoardState, stack *Stack) *ConstraintEngine {
	return &ConstraintEngine{Board: board, Stack: stack}
}

// FixpointResult reports what RunFixpoint found when it stopped.
type FixpointResult int

const (
	// FixpointSolved means every cell is now assigned.
	FixpointSolved FixpointResult = iota
	// FixpointStalled means no rule applies and cells remain unassigned;
	// BacktrackSearch must take over.
	FixpointStalled
	// FixpointContradiction means some unassigned cell has no possible
	// value left; the caller must retreat via BacktrackSearch.retreat.
	FixpointContradiction
)

// RunFixpoint applies F, N, B, T to a fixpoint, restarting from F after
// any progress.
func (e *ConstraintEngine) RunFixpoint() FixpointResult {
	for {
		if e.Board.IsSolved() {
			return FixpointSolved
		}

		progress, contradiction := e.tryF()
		if contradiction {
			return FixpointContradiction
		}
		if progress {
			continue
		}

		if e.tryN() {
			continue
		}
		if e.tryB() {
			continue
		}
		if e.tryT() {
			continue
		}

		return FixpointStalled
	}
}

// tryF implements the forced-cell rule: an unassigned cell with exactly
// one possible value must take it. A cell with zero possible values is
// a contradiction that must be reported, not silently skipped.
func (e *ConstraintEngine) tryF() (progress bool, contradiction bool) {
	for _, cell := range e.Board.Topology.Cells {
		if cell.Content != 0 {
			continue
		}
		values := e.Board.PossibleValues(cell.Index)
		switch len(values) {
		case 0:
			return false, true
		case 1:
			e.assign(RuleF, cell.Index, values[0])
			return true, false
		}
	}
	return false, false
}

// tryN implements the necessary-placement rule: within a set, a symbol
// that only one unassigned member can still take must go there.
func (e *ConstraintEngine) tryN() bool {
	for _, name := range e.Board.Topology.SetNamesSorted() {
		set := e.Board.Topology.Sets[name]
		for v := 1; v < e.Board.Alphabet.Size(); v++ {
			if set.Content[v] != 0 {
				continue
			}
			var only int = -1
			count := 0
			for _, m := range set.Membership {
				cell := e.Board.Topology.Cells[m]
				if cell.Content != 0 {
					continue
				}
				if cell.Possible[v] == 0 {
					count++
					only = m
				}
			}
			if count == 1 {
				e.assign(RuleN, only, v)
				return true
			}
		}
	}
	return false
}

func (e *ConstraintEngine) assign(kind RuleKind, cellIdx, v int) {
	e.Board.Try(cellIdx, v)
	e.Stack.Push(&StackRecord{Kind: kind, Cell: cellIdx, Value: v})
}

// tryB implements box-claim (intersection) elimination: spec §4.4.3,
// preserved verbatim including the "supplied outside in some but not
// all of {A,B}" condition, which is broader than the textbook pointing-
// pair statement.
func (e *ConstraintEngine) tryB() bool {
	keys := sortedKeys(e.Board.Topology.Intersections)

	for _, key := range keys {
		cells := e.Board.Topology.Intersections[key]
		if len(cells) < 2 {
			continue
		}

		nameA, nameB := splitIntersectionKey(key)
		setA := e.Board.Topology.Sets[nameA]
		setB := e.Board.Topology.Sets[nameB]
		inI := toCellSet(cells)

		for v := 1; v < e.Board.Alphabet.Size(); v++ {
			if !e.anyOpenOffers(cells, v) {
				continue
			}

			suppliedA := e.suppliedOutside(setA, inI, v)
			suppliedB := e.suppliedOutside(setB, inI, v)
			if suppliedA == suppliedB {
				continue
			}

			var target *Set
			if suppliedA {
				target = setA
			} else {
				target = setB
			}

			var eliminations []Elimination
			for _, m := range target.Membership {
				if inI[m] {
					continue
				}
				cell := e.Board.Topology.Cells[m]
				if cell.Content == 0 && cell.Possible[v] == 0 {
					e.Board.Eliminate(m, v)
					eliminations = append(eliminations, Elimination{Cell: m, Value: v})
				}
			}

			if len(eliminations) > 0 {
				e.Stack.Push(&StackRecord{Kind: RuleB, Value: v, Eliminations: eliminations})
				return true
			}
		}
	}
	return false
}

// anyOpenOffers reports whether some unassigned cell among cells can
// still take v.
func (e *ConstraintEngine) anyOpenOffers(cells []int, v int) bool {
	for _, m := range cells {
		cell := e.Board.Topology.Cells[m]
		if cell.Content == 0 && cell.Possible[v] == 0 {
			return true
		}
	}
	return false
}

// suppliedOutside reports whether some unassigned cell of set, outside
// the intersection exclude, can still take v.
func (e *ConstraintEngine) suppliedOutside(set *Set, exclude map[int]bool, v int) bool {
	for _, m := range set.Membership {
		if exclude[m] {
			continue
		}
		cell := e.Board.Topology.Cells[m]
		if cell.Content == 0 && cell.Possible[v] == 0 {
			return true
		}
	}
	return false
}

// tryT implements naked and hidden tuples of order 2..4: spec §4.4.4.
func (e *ConstraintEngine) tryT() bool {
	for _, name := range e.Board.Topology.SetNamesSorted() {
		set := e.Board.Topology.Sets[name]

		var open []int
		for _, m := range set.Membership {
			if e.Board.Topology.Cells[m].Content == 0 {
				open = append(open, m)
			}
		}
		if len(open) == 0 {
			continue
		}

		contributed := make([]int, e.Board.Alphabet.Size())
		for _, m := range open {
			cell := e.Board.Topology.Cells[m]
			for v := 1; v < e.Board.Alphabet.Size(); v++ {
				if cell.Possible[v] == 0 {
					contributed[v]++
				}
			}
		}

		maxK := 4
		if maxK > len(open) {
			maxK = len(open)
		}
		for k := 2; k <= maxK; k++ {
			if e.tryTupleOrder(set, open, contributed, k) {
				return true
			}
		}
	}
	return false
}

func (e *ConstraintEngine) tryTupleOrder(set *Set, open []int, contributed []int, k int) bool {
	found := false
	forEachCombination(open, k, func(subset []int) bool {
		tcontr := make([]int, e.Board.Alphabet.Size())
		inSubset := toCellSet(subset)
		for _, m := range subset {
			cell := e.Board.Topology.Cells[m]
			for v := 1; v < e.Board.Alphabet.Size(); v++ {
				if cell.Possible[v] == 0 {
					tcontr[v]++
				}
			}
		}

		discrete := 0
		for v := 1; v < e.Board.Alphabet.Size(); v++ {
			if tcontr[v] > 0 {
				discrete++
			}
		}

		if discrete == k {
			if e.tryNakedTuple(open, inSubset, contributed, tcontr, k) {
				found = true
				return false
			}
		} else if discrete > k {
			within := 0
			for v := 1; v < e.Board.Alphabet.Size(); v++ {
				if tcontr[v] > 0 && contributed[v] == tcontr[v] {
					within++
				}
			}
			if within >= k {
				if e.tryHiddenTuple(subset, contributed, tcontr, k) {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

func (e *ConstraintEngine) tryNakedTuple(open []int, inSubset map[int]bool, contributed, tcontr []int, k int) bool {
	var eliminations []Elimination
	for v := 1; v < e.Board.Alphabet.Size(); v++ {
		if tcontr[v] == 0 || contributed[v] <= tcontr[v] {
			continue
		}
		for _, m := range open {
			if inSubset[m] {
				continue
			}
			cell := e.Board.Topology.Cells[m]
			if cell.Possible[v] == 0 {
				e.Board.Eliminate(m, v)
				eliminations = append(eliminations, Elimination{Cell: m, Value: v})
			}
		}
	}
	if len(eliminations) == 0 {
		return false
	}
	e.Stack.Push(&StackRecord{Kind: RuleT, Eliminations: eliminations})
	return true
}

func (e *ConstraintEngine) tryHiddenTuple(subset []int, contributed, tcontr []int, k int) bool {
	var eliminations []Elimination
	for v := 1; v < e.Board.Alphabet.Size(); v++ {
		if contributed[v] <= tcontr[v] {
			continue
		}
		for _, m := range subset {
			cell := e.Board.Topology.Cells[m]
			if cell.Possible[v] == 0 {
				e.Board.Eliminate(m, v)
				eliminations = append(eliminations, Elimination{Cell: m, Value: v})
			}
		}
	}
	if len(eliminations) == 0 {
		return false
	}
	e.Stack.Push(&StackRecord{Kind: RuleT, Eliminations: eliminations})
	return true
}
