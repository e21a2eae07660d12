package engine

// ============================================================================
// BoardState - try/untry with Reversible Possibility Counters
// ============================================================================
//
// BoardState owns the mutable fields that hang off a Topology's Cells and
// Sets (content, possibility counters, free counts) and the one
// operation that mutates them consistently: Try. A boolean "is this
// still possible" flag is not enough, because the same exclusion can
// come from more than one set at once (e.g. a cell at the intersection
// of a row and a box, both of which already hold the same symbol
// elsewhere): a per-(cell,symbol) counter is required so possibility
// reappears only once every placement responsible for the exclusion is
// retracted. See Topology for the graph Try operates on.
//
// ============================================================================

// BoardState holds the board's mutable fields and the Try/Eliminate
// primitives every rule and search step is built from.
type BoardState struct {
	Topology        *Topology
	Alphabet        *Alphabet
	CellsUnassigned int
}

// NewBoardState binds a BoardState to a topology and alphabet, rejecting
// the pairing immediately if the topology's largest set needs more
// non-empty symbols than the alphabet has (spec invariant 1).
func NewBoardState(topology *Topology, alphabet *Alphabet) (*BoardState, error) {
	if topology.LargestSet > alphabet.NonEmptyCount() {
		return nil, &TopologyError{Reason: "largest set has more cells than there are symbols"}
	}
	return &BoardState{Topology: topology, Alphabet: alphabet}, nil
}

// Reset clears every cell's content and possibility counters and every
// set's content/free counters back to the state right after the
// topology was bound - the state a fresh Problem call starts from.
func (b *BoardState) Reset() {
	size := b.Alphabet.Size()

	for _, cell := range b.Topology.Cells {
		cell.Content = 0
		cell.Possible = make([]int, size)
	}
	for _, name := range b.Topology.SetOrder {
		set := b.Topology.Sets[name]
		set.Content = make([]int, size)
		set.Free = len(set.Membership)
	}
	b.CellsUnassigned = len(b.Topology.Cells)
}

// Try attempts to place new (0 clears) in cell. It returns false on
// conflict - new is already present in one of the cell's sets - and
// leaves the board completely unchanged; the caller must not push an
// undo record in that case. Any other failure is a programmer error
// (invalid index), not a conflict.
func (b *BoardState) Try(cellIdx, new int) bool {
	cell := b.Topology.Cells[cellIdx]
	old := cell.Content

	if new == old {
		return true
	}

	if new > 0 {
		for _, name := range cell.Membership {
			if b.Topology.Sets[name].Content[new] != 0 {
				return false
			}
		}
	}

	cell.Content = new
	switch {
	case old == 0 && new != 0:
		b.CellsUnassigned--
	case old != 0 && new == 0:
		b.CellsUnassigned++
	}

	for _, name := range cell.Membership {
		set := b.Topology.Sets[name]

		set.Content[old]--
		if old > 0 {
			set.Free++
			for _, m := range set.Membership {
				b.Topology.Cells[m].Possible[old]--
			}
		}

		set.Content[new]++
		if new > 0 {
			set.Free--
			for _, m := range set.Membership {
				b.Topology.Cells[m].Possible[new]++
			}
		}
	}

	return true
}

// IsPossible reports whether symbol v remains a legal candidate for
// cell: the invariant is that it does iff the possibility counter is
// exactly 0.
func (b *BoardState) IsPossible(cellIdx, v int) bool {
	return b.Topology.Cells[cellIdx].Possible[v] == 0
}

// Eliminate directly excludes symbol v from cell without assigning
// anything - used by the B and T deductive rules, which narrow
// possibility without placing a value. Reversed by Restore.
func (b *BoardState) Eliminate(cellIdx, v int) {
	b.Topology.Cells[cellIdx].Possible[v]++
}

// Restore undoes one Eliminate call.
func (b *BoardState) Restore(cellIdx, v int) {
	b.Topology.Cells[cellIdx].Possible[v]--
}

// PossibleValues returns the sorted, non-empty symbols still possible
// in cell.
func (b *BoardState) PossibleValues(cellIdx int) []int {
	cell := b.Topology.Cells[cellIdx]
	var values []int
	for v := 1; v < b.Alphabet.Size(); v++ {
		if cell.Possible[v] == 0 {
			values = append(values, v)
		}
	}
	return values
}

// PossibleCount returns the number of symbols still possible in cell.
func (b *BoardState) PossibleCount(cellIdx int) int {
	cell := b.Topology.Cells[cellIdx]
	count := 0
	for v := 1; v < b.Alphabet.Size(); v++ {
		if cell.Possible[v] == 0 {
			count++
		}
	}
	return count
}

// IsSolved reports whether every cell is assigned.
func (b *BoardState) IsSolved() bool {
	return b.CellsUnassigned == 0
}
