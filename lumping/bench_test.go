// SPDX-License-Identifier: MIT

package lumping_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlump/lumping"
)

func BenchmarkLump_Star(b *testing.B) {
	sys := star(b, 63)
	cs := constraints(b, sys, "{S0}")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lumping.Lump(context.Background(), sys, cs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLump_ToyParallel(b *testing.B) {
	sys := toy(b)
	cs := constraints(b, sys, "{x1}")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lumping.Lump(context.Background(), sys, cs, lumping.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}
