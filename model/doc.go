// SPDX-License-Identifier: MIT

// Package model reads model documents and writes lumping results.
//
// A document names the state variables, their right-hand sides and the
// constraints to preserve:
//
//	name: toy
//	variables: [x1, x2, x3]
//	equations:
//	  x1: x2^2 + 4*x2*x3 + 4*x3^2
//	  x2: 4*x3 - 2*x1
//	  x3: x1 + x2
//	constraints:
//	  - "{x1}"
//
// Linear network models replace variables and equations by a network section
// with an edge CSV file (relative to the document) or inline edges:
//
//	network:
//	  inline: [[0, 1, 1], [1, 0, "1/2"]]
//	  laplacian: true
//
// YAML and JSON are accepted. Both decode into a generic map first and then
// into Document through mapstructure with weak typing, so numeric YAML
// scalars such as `x3: 0` or inline weights are read as strings.
//
// Encode writes a reduced system as text, YAML or JSON. The YAML and JSON
// forms are documents themselves and can be loaded back.
package model
