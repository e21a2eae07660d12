package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ============================================================================
// PresetGenerators - Thin Named-Shape Producers
// ============================================================================
//
// Each generator is a pure function from a handful of integer parameters
// to a (topology spec, alphabet spec, columns) triple in exactly the
// formats ParseTopology and NewAlphabet already accept - there is no
// special-casing inside Topology or BoardState for any named shape.
// Deliberately kept to the four shapes the configuration surface names:
// regular sudoku, sudoku with diagonals, brick-shaped (rectangular box)
// sudoku, and Latin squares. Generating puzzles, carving givens, and
// rating difficulty are out of scope; these functions only ever describe
// the empty grid's shape.
//
// ============================================================================

// PresetBoard is the topology/alphabet/columns triple a PresetGenerator
// produces, ready to feed to ParseTopology, NewAlphabet, and the
// Solver's `columns` configuration parameter respectively.
type PresetBoard struct {
	Topology string
	Alphabet string
	Columns  int
}

// GenerateSudoku builds a box-size-n square sudoku: an (n*n)x(n*n) grid
// with row, column, and box sets.
func GenerateSudoku(n int) (*PresetBoard, error) {
	if n < 2 {
		return nil, &ConfigurationError{Attribute: "preset", Reason: "sudoku box size must be at least 2"}
	}
	return buildBoxGrid(n, n, n*n, nil), nil
}

// GenerateSudokuX builds a box-size-n sudoku with the two main diagonals
// added as extra sets, so placements must also be distinct along them.
func GenerateSudokuX(n int) (*PresetBoard, error) {
	if n < 2 {
		return nil, &ConfigurationError{Attribute: "preset", Reason: "sudokux box size must be at least 2"}
	}
	size := n * n
	diag := func(row, col int) []string {
		var extra []string
		if row == col {
			extra = append(extra, "d0")
		}
		if row+col == size-1 {
			extra = append(extra, "d1")
		}
		return extra
	}
	return buildBoxGrid(n, n, size, diag), nil
}

// GenerateBrick builds a rectangular-box sudoku: a size x size grid
// tiled by h-wide, v-tall boxes. size must be evenly divisible by both h
// and v.
func GenerateBrick(h, v, size int) (*PresetBoard, error) {
	if h < 1 || v < 1 || size < 1 {
		return nil, &ConfigurationError{Attribute: "preset", Reason: "brick dimensions must be positive"}
	}
	if size%h != 0 || size%v != 0 {
		return nil, &ConfigurationError{Attribute: "preset", Reason: "brick size must be divisible by both box dimensions"}
	}
	return buildBoxGrid(h, v, size, nil), nil
}

// GenerateLatin builds an n x n Latin square: row and column sets only,
// no boxes.
func GenerateLatin(n int) (*PresetBoard, error) {
	if n < 2 {
		return nil, &ConfigurationError{Attribute: "preset", Reason: "latin square size must be at least 2"}
	}
	var cells []string
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cells = append(cells, fmt.Sprintf("r%d,c%d", row, col))
		}
	}
	return &PresetBoard{
		Topology: strings.Join(cells, " "),
		Alphabet: letterAlphabet(n),
		Columns:  n,
	}, nil
}

// buildBoxGrid is the shared sudoku/sudokux/brick constructor: a size x
// size grid with row, column, and boxCols x boxRows box sets, plus
// whatever extra per-cell set names extra(row, col) contributes.
func buildBoxGrid(boxCols, boxRows, size int, extra func(row, col int) []string) *PresetBoard {
	numBoxCols := size / boxCols
	var cells []string
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			box := (row/boxRows)*numBoxCols + col/boxCols
			names := []string{fmt.Sprintf("r%d", row), fmt.Sprintf("c%d", col), fmt.Sprintf("b%d", box)}
			if extra != nil {
				names = append(names, extra(row, col)...)
			}
			cells = append(cells, strings.Join(names, ","))
		}
	}
	return &PresetBoard{
		Topology: strings.Join(cells, " "),
		Alphabet: numericAlphabet(size),
		Columns:  size,
	}
}

// numericAlphabet returns ". 1 2 3 ... n" - the empty token plus n
// decimal tokens.
func numericAlphabet(n int) string {
	tokens := make([]string, n+1)
	tokens[0] = "."
	for i := 1; i <= n; i++ {
		tokens[i] = strconv.Itoa(i)
	}
	return strings.Join(tokens, " ")
}

// letterAlphabet returns ". A B C ... Z AA AB ..." - the empty token
// plus n base-26 letter tokens, for Latin squares.
func letterAlphabet(n int) string {
	tokens := make([]string, n+1)
	tokens[0] = "."
	for i := 1; i <= n; i++ {
		tokens[i] = letterLabel(i - 1)
	}
	return strings.Join(tokens, " ")
}

// letterLabel renders i (0-based) as a spreadsheet-style base-26 label:
// 0->A, 25->Z, 26->AA, 27->AB, ...
func letterLabel(i int) string {
	var b []byte
	for {
		b = append([]byte{byte('A' + i%26)}, b...)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(b)
}
