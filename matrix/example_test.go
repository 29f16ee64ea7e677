// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlump/matrix"
)

// ExampleSolve demonstrates the membership test with witness.
func ExampleSolve() {
	a, _ := matrix.NewDenseFrom([][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(1, 1)},
		{big.NewRat(0, 1), big.NewRat(2, 1)},
	})
	in := matrix.Vector{big.NewRat(0, 1), big.NewRat(2, 1), big.NewRat(4, 1)}
	out := matrix.Vector{big.NewRat(0, 1), big.NewRat(1, 1), big.NewRat(0, 1)}

	x, err := matrix.Solve(a, in)
	fmt.Println(x[0].RatString(), x[1].RatString(), err)
	_, err = matrix.Solve(a, out)
	fmt.Println(errors.Is(err, matrix.ErrInconsistent))
	// Output:
	// 0 2 <nil>
	// true
}
