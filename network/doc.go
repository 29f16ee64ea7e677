// SPDX-License-Identifier: MIT

// Package network turns weighted edge lists into linear ODE systems.
//
// A Graph over vertices 0..n-1 accumulates rational edge weights; repeated
// edges add up. LinearSystem then reads the weighted adjacency matrix A as
// the system ẋ_i = Σ_j A[i][j]·x_j, or the Laplacian variant
// A − diag(row sums) with WithLaplacian. Vertices are named S0..S{n-1}
// unless distinct names are supplied.
//
// ReadEdgeCSV loads the usual "source,target[,weight...]" edge files: two
// columns mean unit weights, more columns select a weight column (the last by
// default). Weights that are not rationals fall back to 1 with a logged
// warning, or fail with ErrBadWeight under WithStrictWeights.
package network
