// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Rat values.
// r is rows, c is columns, and data holds r*c non-nil elements in row-major order.
// Zero-row or zero-column matrices are legal (empty spans are common in lumping).
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice of zero rationals.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFrom builds a Dense from row slices, copying every entry.
// Stage 1 (Validate): all rows share one length; entries are non-nil.
// Stage 2 (Execute): deep-copy into flat storage.
// Complexity: O(r*c).
func NewDenseFrom(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		// Ragged input is a shape error, not a dimension mismatch
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d: %w", i, ErrBadShape)
		}
		for j, v := range row {
			if v == nil {
				return nil, denseErrorf("Set", i, j, ErrNilMatrix)
			}
			m.data[i*cols+j].Set(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row and column indices
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	// Return a copy so callers cannot alias storage
	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilMatrix)
	}
	// Assign value
	m.data[idx].Set(v)

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make(Vector, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]*big.Rat, len(m.data))
	// Copy all elements into fresh rationals
	for i, v := range m.data {
		copyData[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// swapRows exchanges rows i and k in place (pointer swap, no big.Rat copies).
func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	ri, rk := m.data[i*m.c:(i+1)*m.c], m.data[k*m.c:(k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			sb.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
