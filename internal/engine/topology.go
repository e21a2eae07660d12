package engine

import (
	"sort"
	"strings"
)

// ============================================================================
// Topology - Cell/Set Membership Graph
// ============================================================================
//
// Topology parses the cell/set membership description that defines the
// puzzle's shape: which cells exist and which named sets each one
// belongs to. It is pure structure - no symbol values live here. Calling
// Problem on a Solver resets the content/possible/free fields that hang
// off these Cells and Sets; the Cells and Sets themselves persist until
// the topology is replaced.
//
// ============================================================================

// Cell is a single slot in the puzzle. Content and Possible are reset by
// BoardState on every Problem call and mutated by BoardState.Try from
// then on; Topology only ever sets Index and Membership.
type Cell struct {
	Index      int
	Membership []string // sorted set names this cell belongs to
	Content    int      // 0 = unassigned
	Possible   []int    // possible[v] counter, 1..alphabet size-1; v is possible iff 0
}

// Set is a named group of cells that must hold distinct non-empty
// symbols. Content and Free are reset by BoardState on every Problem
// call and mutated by BoardState.Try from then on; Topology only ever
// sets Name and Membership.
type Set struct {
	Name       string
	Membership []int // cell indices, in order of first appearance
	Content    []int // content[v] = number of member cells holding v
	Free       int   // number of member cells with content == 0
}

// Topology is the parsed cell/set graph for a puzzle shape.
type Topology struct {
	Cells         []*Cell
	Sets          map[string]*Set
	SetOrder      []string       // set names, in order of first appearance
	Intersections map[string][]int // canonical "A,B" key -> cells in A∩B
	LargestSet    int
}

// intersectionKey returns the canonical, sorted, comma-joined key for an
// unordered pair of distinct set names.
func intersectionKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "," + b
}

// ParseTopology parses a whitespace-separated list of cell specs, each a
// comma-separated list of set names (line breaks count as whitespace),
// building cells, sets, and pairwise set intersections per the
// construction algorithm: set names are sorted per cell, and every pair
// of names already attached to a cell gets the cell appended to their
// intersection list.
func ParseTopology(spec string) (*Topology, error) {
	cellSpecs := strings.Fields(spec)
	if len(cellSpecs) == 0 {
		return nil, &ConfigurationError{Attribute: "topology", Reason: "no cells given"}
	}

	t := &Topology{
		Sets:          make(map[string]*Set),
		Intersections: make(map[string][]int),
	}

	for cellIdx, spec := range cellSpecs {
		names := strings.Split(spec, ",")
		for i, n := range names {
			names[i] = strings.TrimSpace(n)
		}
		sort.Strings(names)

		cell := &Cell{Index: cellIdx, Membership: names}
		t.Cells = append(t.Cells, cell)

		for i, name := range names {
			if name == "" {
				return nil, &ConfigurationError{Attribute: "topology", Reason: "empty set name in cell spec"}
			}

			set, ok := t.Sets[name]
			if !ok {
				set = &Set{Name: name}
				t.Sets[name] = set
				t.SetOrder = append(t.SetOrder, name)
			}
			set.Membership = append(set.Membership, cellIdx)
			if len(set.Membership) > t.LargestSet {
				t.LargestSet = len(set.Membership)
			}

			// Every name already attached to this cell pairs with this one.
			for _, other := range names[:i] {
				key := intersectionKey(other, name)
				t.Intersections[key] = append(t.Intersections[key], cellIdx)
			}
		}
	}

	return t, nil
}

// Serialize renders the topology back into the cell-spec string format
// ParseTopology accepts, one cell per token, set names comma-joined in
// the sorted order ParseTopology produces internally. Used for the
// round-trip property (spec §8): parsing the output again yields an
// equivalent topology.
func (t *Topology) Serialize() string {
	parts := make([]string, len(t.Cells))
	for i, c := range t.Cells {
		parts[i] = strings.Join(c.Membership, ",")
	}
	return strings.Join(parts, " ")
}

// SetNamesSorted returns the defined set names in lexical order, used
// wherever the spec requires sorting sets by name for deterministic
// tie-breaking (spec §5).
func (t *Topology) SetNamesSorted() []string {
	names := make([]string, 0, len(t.Sets))
	for n := range t.Sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
